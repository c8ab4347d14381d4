// Package gaussian implements a synthetic linear-Gaussian contextual
// bandit, mainly useful for testing agents and running quick
// experiments without a dataset on disk.
package gaussian

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gobandit/bandit"
	ts "github.com/samuelfneumann/gobandit/timestep"
)

// Gaussian implements a contextual bandit where the expected reward of
// each action is linear in the context. At construction, a weight
// vector is drawn for each action from a standard normal distribution.
// Each round, a fresh context x is drawn i.i.d. standard normal, the
// reward for action a is wₐ·x plus zero-mean Gaussian noise, and the
// best attainable reward is maxₐ wₐ·x.
//
// All randomness flows from a single seeded source, so runs are fully
// reproducible.
type Gaussian struct {
	weights    *mat.Dense // (numActions x contextDim) action weights
	numActions int
	contextDim int

	normal    distuv.Normal // Standard normal for contexts and weights
	noise     distuv.Normal // Reward noise
	noiseless bool

	context    mat.Vector // Context of the current round
	stepNumber int
}

// New creates and returns a new Gaussian bandit with the given number
// of actions and context features. The noiseStd parameter is the
// standard deviation of the reward noise; it may be 0 for noiseless
// rewards.
func New(numActions, contextDim int, noiseStd float64,
	seed uint64) (*Gaussian, error) {
	if numActions < 1 {
		return nil, fmt.Errorf("new: number of actions must be > 0")
	}
	if contextDim < 1 {
		return nil, fmt.Errorf("new: context dimension must be > 0")
	}
	if noiseStd < 0 {
		return nil, fmt.Errorf("new: noise standard deviation must be >= 0")
	}

	source := rand.NewSource(seed)

	normal := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: source}

	// distuv.Normal cannot represent a zero sigma, so noiseless
	// bandits keep a unit sigma and never sample from it
	sigma := noiseStd
	if sigma == 0 {
		sigma = 1.0
	}
	noise := distuv.Normal{Mu: 0.0, Sigma: sigma, Src: source}

	backing := make([]float64, numActions*contextDim)
	for i := range backing {
		backing[i] = normal.Rand()
	}
	weights := mat.NewDense(numActions, contextDim, backing)

	return &Gaussian{
		weights:    weights,
		numActions: numActions,
		contextDim: contextDim,
		normal:     normal,
		noise:      noise,
		noiseless:  noiseStd == 0,
	}, nil
}

// Reset draws a fresh context and returns it as the first TimeStep of
// a run
func (g *Gaussian) Reset() ts.TimeStep {
	g.stepNumber = 0
	g.context = g.drawContext()
	return ts.New(ts.First, g.context, 0, 0, 0, g.stepNumber)
}

// Step scores the action against the current context, then draws the
// context for the next round
func (g *Gaussian) Step(action int) (ts.TimeStep, error) {
	if action < 0 || action >= g.numActions {
		return ts.TimeStep{}, fmt.Errorf("step: invalid action "+
			"\n\twant(∈[0, %v)) \n\thave(%v)", g.numActions, action)
	}

	rewards := g.expectedRewards()
	reward := rewards[action]
	if !g.noiseless {
		reward += g.noise.Rand()
	}

	best := rewards[0]
	for _, r := range rewards {
		if r > best {
			best = r
		}
	}

	g.context = g.drawContext()
	g.stepNumber++

	return ts.New(ts.Mid, g.context, action, reward, best,
		g.stepNumber), nil
}

// expectedRewards returns the noiseless reward of every action for the
// current context
func (g *Gaussian) expectedRewards() []float64 {
	rewards := make([]float64, g.numActions)
	out := mat.NewVecDense(g.numActions, rewards)
	out.MulVec(g.weights, g.context)
	return rewards
}

// drawContext draws a fresh standard normal context vector
func (g *Gaussian) drawContext() mat.Vector {
	backing := make([]float64, g.contextDim)
	for i := range backing {
		backing[i] = g.normal.Rand()
	}
	return mat.NewVecDense(g.contextDim, backing)
}

// NumActions returns the number of actions of the bandit
func (g *Gaussian) NumActions() int {
	return g.numActions
}

// ContextDim returns the number of features in each context
func (g *Gaussian) ContextDim() int {
	return g.contextDim
}

// ObservationSpec returns the observation specification of the bandit
func (g *Gaussian) ObservationSpec() bandit.Spec {
	shape := mat.NewVecDense(g.contextDim, nil)

	low := make([]float64, g.contextDim)
	high := make([]float64, g.contextDim)
	for i := range low {
		low[i] = math.Inf(-1)
		high[i] = math.Inf(1)
	}
	lowVec := mat.NewVecDense(g.contextDim, low)
	highVec := mat.NewVecDense(g.contextDim, high)

	return bandit.NewSpec(shape, bandit.Observation, lowVec, highVec,
		bandit.Continuous)
}

// ActionSpec returns the action specification of the bandit
func (g *Gaussian) ActionSpec() bandit.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(g.numActions - 1)})

	return bandit.NewSpec(shape, bandit.Action, lowerBound, upperBound,
		bandit.Discrete)
}

// RewardSpec returns the reward specification of the bandit
func (g *Gaussian) RewardSpec() bandit.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{math.Inf(-1)})
	upperBound := mat.NewVecDense(1, []float64{math.Inf(1)})

	return bandit.NewSpec(shape, bandit.Reward, lowerBound, upperBound,
		bandit.Continuous)
}

// String returns the string representation of the bandit
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian | Actions: %v | Context Dim: %v",
		g.numActions, g.contextDim)
}
