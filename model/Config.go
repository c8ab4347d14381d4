package model

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/initwfn"
	"github.com/samuelfneumann/gobandit/network"
	"github.com/samuelfneumann/gobandit/solver"
)

// Config implements a configuration of a NeuralBandit reward model
type Config struct {
	HiddenSizes []int                 // Hidden layer sizes
	Biases      []bool                // Whether each hidden layer has a bias
	Activations []*network.Activation // Activation of each hidden layer

	// Initialization algorithm for weights
	InitWFn *initwfn.InitWFn

	// Solver for learning weights. The solver's configured learning
	// rate is the initial rate of the decay schedule.
	Solver *solver.Solver

	// LearnRateDecay controls the inverse decay of the learning rate
	// over training epochs. A value <= 0 disables decay.
	LearnRateDecay float64

	// LearnRateReset determines whether the decay schedule restarts
	// at the initial learning rate on every Train call
	LearnRateReset bool

	// MaxGradNorm is the gradient clipping threshold. A value <= 0
	// disables clipping.
	MaxGradNorm float64

	// DropoutProb is the probability of dropout between hidden
	// layers. A value <= 0 disables dropout.
	DropoutProb float64

	// EvalWithDropout determines whether dropout is also applied when
	// predicting rewards for action selection
	EvalWithDropout bool
}

// Validate checks whether the Config describes a valid NeuralBandit
func (c Config) Validate() error {
	if len(c.HiddenSizes) != len(c.Biases) {
		return fmt.Errorf("config: invalid number of biases\n\twant(%v)"+
			"\n\thave(%v)", len(c.HiddenSizes), len(c.Biases))
	}
	if len(c.HiddenSizes) != len(c.Activations) {
		return fmt.Errorf("config: invalid number of activations"+
			"\n\twant(%v)\n\thave(%v)", len(c.HiddenSizes),
			len(c.Activations))
	}
	if c.InitWFn == nil {
		return fmt.Errorf("config: no weight initializer given")
	}
	if c.Solver == nil {
		return fmt.Errorf("config: no solver given")
	}
	if c.DropoutProb >= 1 {
		return fmt.Errorf("config: dropout probability must be < 1 "+
			"\n\thave(%v)", c.DropoutProb)
	}
	return nil
}

// dropout returns the dropout probability, normalizing disabled
// values to 0
func (c Config) dropout() float64 {
	if c.DropoutProb <= 0 {
		return 0
	}
	return c.DropoutProb
}
