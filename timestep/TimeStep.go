// Package timestep implements timesteps of the agent-bandit interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first step of a bandit run or any later step. Bandit interactions
// never terminate, so there is no notion of a last step.
type StepType int

const (
	First StepType = iota
	Mid
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single round of the bandit interaction.
// Context holds the context vector for which the next action should be
// chosen. Action and Reward describe the previous round: Action is the
// action taken for the previous context, and Reward is the reward the
// bandit returned for it. BestReward is the highest reward that was
// attainable for the previous context and is used for regret tracking.
// On a First step, Action, Reward, and BestReward are meaningless.
type TimeStep struct {
	stepType   StepType
	Context    mat.Vector
	Action     int
	Reward     float64
	BestReward float64
	Number     int
}

// New returns a new TimeStep
func New(t StepType, context mat.Vector, action int, reward,
	bestReward float64, number int) TimeStep {
	return TimeStep{t, context, action, reward, bestReward, number}
}

// First returns whether a TimeStep is the first of a bandit run
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is any step after the first
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Action: %v  |  Reward:  %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Action, t.Reward, t.Number)
}

// Transition packages together the (context, action, reward) tuple
// that is stored in a transition database and used to retrain reward
// models. Context is the context for which Action was chosen, and
// Reward is the reward the bandit returned for that choice.
type Transition struct {
	Context mat.Vector
	Action  int
	Reward  float64
}

// NewTransition returns a new Transition
func NewTransition(context mat.Vector, action int,
	reward float64) Transition {
	return Transition{Context: context, Action: action, Reward: reward}
}
