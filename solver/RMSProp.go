package solver

import G "gorgonia.org/gorgonia"

// RMSPropConfig describes a configuration of the RMSProp solver
type RMSPropConfig struct {
	StepSize float64
	Epsilon  float64 // Smoothing factor
	Rho      float64 // Decay factor of the squared gradient average
	Batch    int
}

// NewDefaultRMSProp returns a new RMSProp Solver with default
// hyperparameters
func NewDefaultRMSProp(stepSize float64, batchSize int) (*Solver, error) {
	return NewRMSProp(stepSize, 1e-8, 0.99, batchSize)
}

// NewRMSProp returns a new RMSProp Solver
func NewRMSProp(stepSize, epsilon, rho float64, batchSize int) (*Solver,
	error) {
	rmsprop := RMSPropConfig{
		StepSize: stepSize,
		Epsilon:  epsilon,
		Rho:      rho,
		Batch:    batchSize,
	}

	return newSolver(RMSProp, rmsprop)
}

// Create returns a new Gorgonia RMSProp Solver as described by the
// RMSPropConfig
func (r RMSPropConfig) Create() G.Solver {
	return r.CreateWith(r.StepSize, 0)
}

// CreateWith returns a new Gorgonia RMSProp Solver as described by the
// RMSPropConfig, but with the given learning rate and gradient
// clipping
func (r RMSPropConfig) CreateWith(stepSize, clip float64) G.Solver {
	opts := []G.SolverOpt{
		G.WithLearnRate(stepSize),
		G.WithEps(r.Epsilon),
		G.WithRho(r.Rho),
		G.WithBatchSize(float64(r.Batch)),
	}
	if clip > 0 {
		opts = append(opts, G.WithClip(clip))
	}
	return G.NewRMSPropSolver(opts...)
}

// LearnRate returns the configured learning rate
func (r RMSPropConfig) LearnRate() float64 {
	return r.StepSize
}

// ValidType returns if the given Solver type is a valid type to be
// created with this config.
func (r RMSPropConfig) ValidType(t Type) bool {
	return t == RMSProp
}
