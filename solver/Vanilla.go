package solver

import G "gorgonia.org/gorgonia"

// VanillaConfig describes a configuration of the vanilla SGD solver
type VanillaConfig struct {
	StepSize float64
	Batch    int
}

// NewVanilla returns a new vanilla SGD Solver
func NewVanilla(stepSize float64, batchSize int) (*Solver, error) {
	vanilla := VanillaConfig{
		StepSize: stepSize,
		Batch:    batchSize,
	}

	return newSolver(Vanilla, vanilla)
}

// Create returns a new Gorgonia vanilla SGD Solver as described by
// the VanillaConfig
func (v VanillaConfig) Create() G.Solver {
	return v.CreateWith(v.StepSize, 0)
}

// CreateWith returns a new Gorgonia vanilla SGD Solver as described by
// the VanillaConfig, but with the given learning rate and gradient
// clipping
func (v VanillaConfig) CreateWith(stepSize, clip float64) G.Solver {
	opts := []G.SolverOpt{
		G.WithLearnRate(stepSize),
		G.WithBatchSize(float64(v.Batch)),
	}
	if clip > 0 {
		opts = append(opts, G.WithClip(clip))
	}
	return G.NewVanillaSolver(opts...)
}

// LearnRate returns the configured learning rate
func (v VanillaConfig) LearnRate() float64 {
	return v.StepSize
}

// ValidType returns if the given Solver type is a valid type to be
// created with this config.
func (v VanillaConfig) ValidType(t Type) bool {
	return t == Vanilla
}
