// Package neuralgreedy implements a deep contextual bandit agent that
// selects actions epsilon greedily with respect to a neural reward
// model.
package neuralgreedy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobandit/bandit"
	"github.com/samuelfneumann/gobandit/model"
	"github.com/samuelfneumann/gobandit/timestep"
	"github.com/samuelfneumann/gobandit/transitions"
	"github.com/samuelfneumann/gobandit/utils/floatutils"
)

// NeuralGreedy implements epsilon-greedy action selection driven by a
// trained neural reward predictor.
//
// For the first numActions * initPulls rounds, actions are selected
// round robin so that every action is pulled initPulls times before
// the model's predictions are trusted at all. After that, a random
// action is selected with probability epsilon; otherwise the agent
// selects the action whose predicted reward is highest, breaking ties
// uniformly at random.
//
// The agent stores every (context, action, reward) transition in a
// transition database and refits the reward model on it whenever
// Step is called.
type NeuralGreedy struct {
	model *model.NeuralBandit
	db    *transitions.DB

	epsilon    float64
	initPulls  int
	numActions int

	t       int // Number of actions selected so far
	updates int // Number of training rounds performed

	rng *rand.Rand
}

// New creates and returns a new NeuralGreedy agent on the given bandit
func New(b bandit.Bandit, config Config, seed uint64) (*NeuralGreedy,
	error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	numActions := b.NumActions()
	features := b.ContextDim()

	reward, err := model.New(features, numActions, config.BatchSize,
		config.modelConfig())
	if err != nil {
		return nil, fmt.Errorf("new: could not create reward model: %v", err)
	}

	db, err := transitions.New(features, config.MaxDBSize, seed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create transition "+
			"database: %v", err)
	}

	source := rand.NewSource(seed)
	rng := rand.New(source)

	return &NeuralGreedy{
		model:      reward,
		db:         db,
		epsilon:    config.Epsilon,
		initPulls:  config.InitPulls,
		numActions: numActions,
		rng:        rng,
	}, nil
}

// SelectAction selects an action for the given context.
//
// Until every action has been selected InitPulls times, actions are
// selected round robin regardless of the context. Afterwards, a
// uniformly random action is selected with probability epsilon, and
// the action of maximum predicted reward otherwise.
func (n *NeuralGreedy) SelectAction(context mat.Vector) (int, error) {
	n.t++

	if n.t <= n.numActions*n.initPulls {
		return (n.t - 1) % n.numActions, nil
	}

	if n.rng.Float64() < n.epsilon {
		return n.rng.Intn(n.numActions), nil
	}

	predictions, err := n.model.Predict(vecToSlice(context))
	if err != nil {
		return 0, fmt.Errorf("selectaction: could not predict "+
			"rewards: %v", err)
	}

	// If multiple actions have the maximal predicted reward, select a
	// random maximal action
	_, maxIndices := floatutils.MaxSlice(predictions)
	return maxIndices[n.rng.Intn(len(maxIndices))], nil
}

// Update records that taking action for context resulted in reward by
// adding the transition to the agent's transition database
func (n *NeuralGreedy) Update(context mat.Vector, action int,
	reward float64) error {
	if action < 0 || action >= n.numActions {
		return fmt.Errorf("update: invalid action \n\twant(∈[0, %v)) "+
			"\n\thave(%v)", n.numActions, action)
	}
	return n.db.Add(timestep.NewTransition(context, action, reward))
}

// Step refits the reward model to the transition database, training
// for epochs epochs on batches of batchSize. If the database is still
// empty, Step returns an error satisfying transitions.IsEmptyDB.
func (n *NeuralGreedy) Step(batchSize, epochs int) error {
	n.updates++
	return n.model.Train(n.db, epochs, batchSize)
}

// Epsilon returns the agent's probability of selecting a random action
func (n *NeuralGreedy) Epsilon() float64 {
	return n.epsilon
}

// SetEpsilon sets the agent's probability of selecting a random action
func (n *NeuralGreedy) SetEpsilon(epsilon float64) {
	n.epsilon = epsilon
}

// EffectiveLearnRate returns the learning rate the next training epoch
// of the reward model will use
func (n *NeuralGreedy) EffectiveLearnRate() float64 {
	return n.model.EffectiveLearnRate()
}

// TransitionsStored returns the number of transitions currently held
// in the agent's transition database
func (n *NeuralGreedy) TransitionsStored() int {
	return n.db.Len()
}

// Close cleans up the agent's reward model
func (n *NeuralGreedy) Close() error {
	return n.model.Close()
}

// vecToSlice flattens a context vector into a []float64
func vecToSlice(v mat.Vector) []float64 {
	if dense, ok := v.(*mat.VecDense); ok {
		return dense.RawVector().Data
	}

	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return data
}
