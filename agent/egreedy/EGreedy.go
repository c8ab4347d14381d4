// Package egreedy implements a tabular epsilon-greedy bandit agent
// that ignores contexts, tracking a running mean reward per action.
// It is mainly useful as a baseline against contextual agents.
package egreedy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/bandit"
	"github.com/samuelfneumann/gobandit/utils/floatutils"
)

func init() {
	agent.Register(Config{})
}

// EGreedy implements epsilon-greedy action selection over the running
// mean reward of each action
type EGreedy struct {
	means  []float64
	counts []int

	epsilon    float64
	numActions int

	rng *rand.Rand
}

// Config implements a configuration for an EGreedy agent
type Config struct {
	Epsilon float64 // Probability of selecting a random action
}

// Type returns the type of the configuration
func (c Config) Type() agent.Type {
	return agent.Type("EGreedy")
}

// Validate checks a Config to ensure it is a valid configuration of an
// EGreedy agent
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("config: epsilon must be in [0, 1] "+
			"\n\thave(%v)", c.Epsilon)
	}
	return nil
}

// CreateAgent creates a new EGreedy agent as described by the
// configuration
func (c Config) CreateAgent(b bandit.Bandit, seed uint64) (agent.Agent,
	error) {
	return New(b, c, seed)
}

// New creates and returns a new EGreedy agent on the given bandit
func New(b bandit.Bandit, config Config, seed uint64) (*EGreedy, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	numActions := b.NumActions()
	source := rand.NewSource(seed)
	rng := rand.New(source)

	return &EGreedy{
		means:      make([]float64, numActions),
		counts:     make([]int, numActions),
		epsilon:    config.Epsilon,
		numActions: numActions,
		rng:        rng,
	}, nil
}

// SelectAction selects a random action with probability epsilon and
// the action of maximum mean observed reward otherwise, breaking ties
// uniformly at random. The context is ignored.
func (e *EGreedy) SelectAction(_ mat.Vector) (int, error) {
	if e.rng.Float64() < e.epsilon {
		return e.rng.Intn(e.numActions), nil
	}

	_, maxIndices := floatutils.MaxSlice(e.means)
	return maxIndices[e.rng.Intn(len(maxIndices))], nil
}

// Update folds the observed reward into the running mean reward of the
// taken action
func (e *EGreedy) Update(_ mat.Vector, action int, reward float64) error {
	if action < 0 || action >= e.numActions {
		return fmt.Errorf("update: invalid action \n\twant(∈[0, %v)) "+
			"\n\thave(%v)", e.numActions, action)
	}

	e.counts[action]++
	e.means[action] += (reward - e.means[action]) / float64(e.counts[action])
	return nil
}

// Step is a no-op: the agent learns fully incrementally in Update
func (e *EGreedy) Step(_, _ int) error {
	return nil
}

// Mean returns the running mean reward of the given action
func (e *EGreedy) Mean(action int) float64 {
	return e.means[action]
}
