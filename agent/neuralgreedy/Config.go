package neuralgreedy

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/bandit"
	"github.com/samuelfneumann/gobandit/initwfn"
	"github.com/samuelfneumann/gobandit/model"
	"github.com/samuelfneumann/gobandit/network"
	"github.com/samuelfneumann/gobandit/solver"
)

func init() {
	// Register the Config type so that JSON experiment configurations
	// can refer to this agent by name
	agent.Register(Config{})
}

// Defaults for the NeuralGreedy agent
const (
	DefaultInitPulls      int     = 3
	DefaultInitLearnRate  float64 = 0.1
	DefaultLearnRateDecay float64 = 0.5
	DefaultMaxGradNorm    float64 = 0.5
	DefaultBatchSize      int     = 512
)

// Config implements a configuration for a NeuralGreedy agent
type Config struct {
	// Number of times each action is selected, round robin, before
	// the reward model's predictions are used
	InitPulls int

	HiddenSizes []int                 // Hidden layer sizes of the model
	Biases      []bool                // Whether each layer has a bias
	Activations []*network.Activation // Activation of each layer

	// Initialization algorithm for weights
	InitWFn *initwfn.InitWFn

	// Solver for learning weights; its learning rate is the initial
	// rate of the inverse decay schedule
	Solver *solver.Solver

	LearnRateDecay float64 // Inverse decay rate, <= 0 disables
	LearnRateReset bool    // Restart the decay every training round
	MaxGradNorm    float64 // Gradient clipping threshold, <= 0 disables

	DropoutProb     float64 // Dropout probability, <= 0 disables
	EvalWithDropout bool    // Apply dropout when selecting actions too

	Epsilon float64 // Probability of selecting a random action

	// BatchSize is the batch size the training graph is first built
	// with. Training with a different batch size rebuilds the graph.
	BatchSize int

	// MaxDBSize bounds the transition database, evicting the oldest
	// transitions first. A value <= 0 means unbounded.
	MaxDBSize int
}

// NewDefaultConfig returns a Config with the default hyperparameters
// of the NeuralGreedy agent: a [50, 50] ReLU network learned by Adam
// with an initial learning rate of 0.1, halving-style inverse decay
// restarted on every training round, gradient clipping at 0.5, no
// dropout, and greedy (epsilon = 0) action selection.
func NewDefaultConfig() (Config, error) {
	init, err := initwfn.NewGlorotU(1.0)
	if err != nil {
		return Config{}, fmt.Errorf("newdefaultconfig: %v", err)
	}

	sol, err := solver.NewDefaultAdam(DefaultInitLearnRate,
		DefaultBatchSize)
	if err != nil {
		return Config{}, fmt.Errorf("newdefaultconfig: %v", err)
	}

	return Config{
		InitPulls:   DefaultInitPulls,
		HiddenSizes: []int{50, 50},
		Biases:      []bool{true, true},
		Activations: []*network.Activation{network.ReLU(), network.ReLU()},
		InitWFn:     init,
		Solver:      sol,

		LearnRateDecay: DefaultLearnRateDecay,
		LearnRateReset: true,
		MaxGradNorm:    DefaultMaxGradNorm,

		DropoutProb:     0,
		EvalWithDropout: false,

		Epsilon:   0,
		BatchSize: DefaultBatchSize,
	}, nil
}

// Type returns the type of the configuration
func (c Config) Type() agent.Type {
	return agent.Type("NeuralGreedy")
}

// Validate checks a Config to ensure it is a valid configuration of a
// NeuralGreedy agent
func (c Config) Validate() error {
	if c.InitPulls < 0 {
		return fmt.Errorf("config: initial pulls must be >= 0 "+
			"\n\thave(%v)", c.InitPulls)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("config: epsilon must be in [0, 1] "+
			"\n\thave(%v)", c.Epsilon)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("config: batch size must be > 0 \n\thave(%v)",
			c.BatchSize)
	}
	return c.modelConfig().Validate()
}

// CreateAgent creates a new NeuralGreedy agent as described by the
// configuration
func (c Config) CreateAgent(b bandit.Bandit, seed uint64) (agent.Agent,
	error) {
	return New(b, c, seed)
}

// modelConfig returns the configuration of the agent's reward model
func (c Config) modelConfig() model.Config {
	return model.Config{
		HiddenSizes:     c.HiddenSizes,
		Biases:          c.Biases,
		Activations:     c.Activations,
		InitWFn:         c.InitWFn,
		Solver:          c.Solver,
		LearnRateDecay:  c.LearnRateDecay,
		LearnRateReset:  c.LearnRateReset,
		MaxGradNorm:     c.MaxGradNorm,
		DropoutProb:     c.DropoutProb,
		EvalWithDropout: c.EvalWithDropout,
	}
}
