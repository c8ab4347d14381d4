package trackers

import (
	ts "github.com/samuelfneumann/gobandit/timestep"
)

// Regret tracks and saves the cumulative regret over a bandit
// experiment: the running sum of the gap between the best attainable
// reward for each context and the reward the agent actually received.
// The First TimeStep of a run carries no reward and is ignored.
type Regret struct {
	cumulative float64
	regrets    []float64
	filename   string
}

// NewRegret creates and returns a new *Regret Tracker that saves to
// the file at filename
func NewRegret(filename string) Tracker {
	return &Regret{filename: filename}
}

// Track accumulates the regret of the given TimeStep
func (r *Regret) Track(step ts.TimeStep) {
	if step.First() {
		return
	}
	r.cumulative += step.BestReward - step.Reward
	r.regrets = append(r.regrets, r.cumulative)
}

// Save saves the tracked cumulative regret series to disk
func (r *Regret) Save() error {
	return saveData(r.filename, r.regrets)
}
