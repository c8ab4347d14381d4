// Package bandit outlines the interfaces and structs needed to
// implement concrete contextual bandits
package bandit

import (
	"github.com/samuelfneumann/gobandit/timestep"
)

// Bandit implements a contextual bandit. On each round a Bandit
// presents a context vector, accepts an action, and returns the reward
// for taking that action given the presented context.
//
// A Bandit starts ready to use after Reset(), which returns the first
// context. Step(action) scores the action against the current context
// and returns a TimeStep holding the reward for that action, the best
// reward that was attainable for that context, and the next context to
// choose an action for.
type Bandit interface {
	Reset() timestep.TimeStep
	Step(action int) (timestep.TimeStep, error)
	NumActions() int
	ContextDim() int
	ObservationSpec() Spec
	ActionSpec() Spec
	RewardSpec() Spec
}
