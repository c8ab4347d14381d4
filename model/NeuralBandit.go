// Package model implements the neural reward predictor that deep
// contextual bandit agents select actions with.
package model

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gobandit/network"
	"github.com/samuelfneumann/gobandit/transitions"
)

// NeuralBandit implements a neural network that predicts the reward of
// every action given a context. It packages together two views of the
// same MLP:
//
// A training network takes batches of contexts and is fit by gradient
// descent on the mean squared error between the predicted reward of
// the action that was actually taken (selected from the network's
// per-action predictions with a one-hot mask) and the reward that was
// observed. Gradients are clipped and the learning rate follows an
// inverse decay schedule, with the solver rebuilt whenever the
// effective rate changes.
//
// A prediction network takes a single context and produces the
// per-action reward predictions used for action selection. It shares
// no graph with the training network; its weights are synced from the
// training network after every training call. If the model was
// configured with dropout, the training network always applies it,
// while the prediction network applies it only when EvalWithDropout
// was set.
type NeuralBandit struct {
	features   int
	numActions int
	config     Config

	// Training view
	trainNet        network.NeuralNet
	trainVM         G.VM
	selectedActions *G.Node // One-hot mask of taken actions
	observedRewards *G.Node

	// Prediction view
	predictNet network.NeuralNet
	predictVM  G.VM

	gSolver     G.Solver
	currentRate float64
	trainRounds int // Completed training epochs, drives lr decay
}

// New creates and returns a new NeuralBandit predicting rewards for
// numActions actions from contexts with features features. The
// batchSize parameter sets the batch size of the initial training
// graph; Train rebuilds the graph if it is later called with a
// different batch size.
func New(features, numActions, batchSize int, config Config) (*NeuralBandit,
	error) {
	if features < 1 {
		return nil, fmt.Errorf("new: features must be > 0")
	}
	if numActions < 1 {
		return nil, fmt.Errorf("new: number of actions must be > 0")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	n := &NeuralBandit{
		features:   features,
		numActions: numActions,
		config:     config,
	}

	if err := n.buildTrainGraph(batchSize, nil); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	// The prediction network only applies dropout when configured to
	// predict with dropout
	dropout := 0.0
	if config.EvalWithDropout {
		dropout = config.dropout()
	}

	gPredict := G.NewGraph()
	predictNet, err := network.NewMultiHeadMLP(features, 1, numActions,
		gPredict, config.HiddenSizes, config.Biases, config.InitWFn.InitWFn(),
		config.Activations, dropout)
	if err != nil {
		return nil, fmt.Errorf("new: could not create prediction "+
			"network: %v", err)
	}
	if err := predictNet.Set(n.trainNet); err != nil {
		return nil, fmt.Errorf("new: could not sync prediction "+
			"network: %v", err)
	}

	n.predictNet = predictNet
	n.predictVM = G.NewTapeMachine(gPredict)

	return n, nil
}

// buildTrainGraph constructs the batch training graph: the MLP, the
// one-hot action mask, the observed rewards, and the MSE loss between
// predicted and observed rewards of the taken actions. If prev is
// non-nil, its weights are copied into the new network.
func (n *NeuralBandit) buildTrainGraph(batchSize int,
	prev network.NeuralNet) error {
	g := G.NewGraph()
	trainNet, err := network.NewMultiHeadMLP(n.features, batchSize,
		n.numActions, g, n.config.HiddenSizes, n.config.Biases,
		n.config.InitWFn.InitWFn(), n.config.Activations, n.config.dropout())
	if err != nil {
		return fmt.Errorf("buildtraingraph: could not create training "+
			"network: %v", err)
	}

	if prev != nil {
		if err := trainNet.Set(prev); err != nil {
			return fmt.Errorf("buildtraingraph: could not copy "+
				"weights: %v", err)
		}
	}

	selectedActions := G.NewMatrix(
		g,
		tensor.Float64,
		G.WithName("selectedActions"),
		G.WithShape(batchSize, n.numActions),
	)
	observedRewards := G.NewVector(
		g,
		tensor.Float64,
		G.WithName("observedRewards"),
		G.WithShape(batchSize),
	)

	// Predicted reward of the action that was actually taken
	predictedRewards := G.Must(G.HadamardProd(trainNet.Prediction(),
		selectedActions))
	predictedRewards = G.Must(G.Sum(predictedRewards, 1))

	// Mean squared error between predicted and observed rewards
	losses := G.Must(G.Sub(observedRewards, predictedRewards))
	losses = G.Must(G.Square(losses))
	cost := G.Must(G.Mean(losses))

	if _, err := G.Grad(cost, trainNet.Learnables()...); err != nil {
		return fmt.Errorf("buildtraingraph: could not compute "+
			"gradient: %v", err)
	}

	if n.trainVM != nil {
		n.trainVM.Close()
	}

	n.trainNet = trainNet
	n.trainVM = G.NewTapeMachine(g, G.BindDualValues(trainNet.Learnables()...))
	n.selectedActions = selectedActions
	n.observedRewards = observedRewards

	// The solver holds per-node state, which a fresh graph invalidates
	n.gSolver = nil

	return nil
}

// Predict returns the predicted reward of every action for the given
// context
func (n *NeuralBandit) Predict(context []float64) ([]float64, error) {
	if len(context) != n.features {
		return nil, fmt.Errorf("predict: invalid context dimension "+
			"\n\twant(%v) \n\thave(%v)", n.features, len(context))
	}

	if err := n.predictNet.SetInput(context); err != nil {
		return nil, fmt.Errorf("predict: could not set input: %v", err)
	}
	if err := n.predictVM.RunAll(); err != nil {
		return nil, fmt.Errorf("predict: could not run forward pass: %v", err)
	}

	output := n.predictNet.Output().Data().([]float64)
	predictions := make([]float64, n.numActions)
	copy(predictions, output)

	n.predictVM.Reset()
	return predictions, nil
}

// Train fits the model to the transition database for the given number
// of epochs. Each epoch samples one batch of batchSize transitions
// uniformly with replacement and takes a single gradient step on it.
//
// If the database is empty, Train returns an error satisfying
// transitions.IsEmptyDB and the model is left unchanged.
func (n *NeuralBandit) Train(db *transitions.DB, epochs,
	batchSize int) error {
	if epochs < 1 {
		return fmt.Errorf("train: epochs must be > 0")
	}
	if batchSize < 1 {
		return fmt.Errorf("train: batch size must be > 0")
	}
	if db.ContextDim() != n.features {
		return fmt.Errorf("train: database context dimension does not "+
			"match model \n\twant(%v) \n\thave(%v)", n.features,
			db.ContextDim())
	}
	if db.Len() == 0 {
		// Surface the typed error so that callers can treat an empty
		// database as a skipped training round
		_, _, _, err := db.Sample(batchSize)
		return err
	}

	if n.config.LearnRateReset {
		n.trainRounds = 0
	}

	if n.trainNet.BatchSize() != batchSize {
		if err := n.buildTrainGraph(batchSize, n.trainNet); err != nil {
			return fmt.Errorf("train: %v", err)
		}
	}

	for epoch := 0; epoch < epochs; epoch++ {
		contexts, actions, rewards, err := db.Sample(batchSize)
		if err != nil {
			return fmt.Errorf("train: could not sample batch: %v", err)
		}

		if err := n.trainNet.SetInput(contexts); err != nil {
			return fmt.Errorf("train: could not set input: %v", err)
		}

		// One-hot encode the taken actions
		mask := make([]float64, batchSize*n.numActions)
		for i, action := range actions {
			mask[i*n.numActions+action] = 1.0
		}
		maskTensor := tensor.New(
			tensor.WithShape(batchSize, n.numActions),
			tensor.WithBacking(mask),
		)
		if err := G.Let(n.selectedActions, maskTensor); err != nil {
			return fmt.Errorf("train: could not set action mask: %v", err)
		}

		rewardTensor := tensor.New(
			tensor.WithShape(batchSize),
			tensor.WithBacking(rewards),
		)
		if err := G.Let(n.observedRewards, rewardTensor); err != nil {
			return fmt.Errorf("train: could not set rewards: %v", err)
		}

		n.ensureSolver()

		if err := n.trainVM.RunAll(); err != nil {
			return fmt.Errorf("train: could not run training step: %v", err)
		}
		if err := n.gSolver.Step(n.trainNet.Model()); err != nil {
			return fmt.Errorf("train: could not step solver: %v", err)
		}
		n.trainVM.Reset()

		n.trainRounds++
	}

	if err := n.predictNet.Set(n.trainNet); err != nil {
		return fmt.Errorf("train: could not sync prediction network: %v", err)
	}

	return nil
}

// ensureSolver rebuilds the Gorgonia solver if the effective learning
// rate has changed since the solver was last built
func (n *NeuralBandit) ensureSolver() {
	rate := n.EffectiveLearnRate()
	if n.gSolver == nil || rate != n.currentRate {
		n.gSolver = n.config.Solver.CreateWith(rate, n.config.MaxGradNorm)
		n.currentRate = rate
	}
}

// EffectiveLearnRate returns the learning rate the next gradient step
// will use: the solver's configured rate divided by
// (1 + decay * completed epochs).
func (n *NeuralBandit) EffectiveLearnRate() float64 {
	initLR := n.config.Solver.LearnRate()
	if n.config.LearnRateDecay <= 0 {
		return initLR
	}
	return initLR / (1.0 + n.config.LearnRateDecay*float64(n.trainRounds))
}

// Features returns the number of features of contexts the model
// predicts for
func (n *NeuralBandit) Features() int {
	return n.features
}

// NumActions returns the number of actions the model predicts rewards
// for
func (n *NeuralBandit) NumActions() int {
	return n.numActions
}

// Close cleans up the VMs of the model's computational graphs
func (n *NeuralBandit) Close() error {
	if err := n.trainVM.Close(); err != nil {
		return fmt.Errorf("close: could not close training VM: %v", err)
	}
	if err := n.predictVM.Close(); err != nil {
		return fmt.Errorf("close: could not close prediction VM: %v", err)
	}
	return nil
}
