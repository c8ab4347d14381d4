// Package agent defines the interfaces of contextual bandit agents
package agent

import (
	"gonum.org/v1/gonum/mat"
)

// Agent determines the implementation details of a contextual bandit
// agent or algorithm.
//
// An Agent is composed of a Policy, which chooses actions for
// contexts, and a Learner, which records transitions and periodically
// refits whatever the Policy chooses actions with.
type Agent interface {
	Learner
	Policy
}

// A Closer is an agent that must be closed after it is done learning
type Closer interface {
	Agent
	Close() error
}

// Policy represents a policy that an agent can have.
//
// A Policy maps a context vector to one of the bandit's actions.
// Returned actions are always in [0, NumActions()).
type Policy interface {
	SelectAction(context mat.Vector) (int, error)
}

// Learner implements a learning algorithm that defines how an agent's
// action-selection mechanism changes with experience.
type Learner interface {
	// Update records that taking action for context resulted in
	// reward, storing the transition for later training
	Update(context mat.Vector, action int, reward float64) error

	// Step performs a single training round on the stored
	// transitions, fitting the agent's reward estimates
	Step(batchSize, epochs int) error
}
