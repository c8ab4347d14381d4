package initwfn

import G "gorgonia.org/gorgonia"

// ZeroesConfig implements a configuration of the zero initialization
// algorithm.
type ZeroesConfig struct {
}

// NewZeroes returns a new weight initializer that sets all weights to
// zero
func NewZeroes() (*InitWFn, error) {
	config := ZeroesConfig{}

	return newInitWFn(config)
}

// Type returns the type of initialization algorithm described by
// the configuration.
func (z ZeroesConfig) Type() Type {
	return Zeroes
}

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (z ZeroesConfig) Create() G.InitWFn {
	return G.Zeroes()
}

// OnesConfig implements a configuration of the ones initialization
// algorithm.
type OnesConfig struct {
}

// NewOnes returns a new weight initializer that sets all weights to
// one
func NewOnes() (*InitWFn, error) {
	config := OnesConfig{}

	return newInitWFn(config)
}

// Type returns the type of initialization algorithm described by
// the configuration.
func (o OnesConfig) Type() Type {
	return Ones
}

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (o OnesConfig) Create() G.InitWFn {
	return G.Ones()
}
