package trackers

import (
	ts "github.com/samuelfneumann/gobandit/timestep"
)

// Reward tracks and saves the reward received on every round of a
// bandit experiment. The First TimeStep of a run carries no reward and
// is ignored.
type Reward struct {
	rewards  []float64
	filename string
}

// NewReward creates and returns a new *Reward Tracker that saves to
// the file at filename
func NewReward(filename string) Tracker {
	return &Reward{filename: filename}
}

// Track caches the reward of the given TimeStep
func (r *Reward) Track(step ts.TimeStep) {
	if step.First() {
		return
	}
	r.rewards = append(r.rewards, step.Reward)
}

// Save saves the tracked rewards to disk
func (r *Reward) Save() error {
	return saveData(r.filename, r.rewards)
}
