// Package network implements neural network function approximators
// using Gorgonia.
package network

import (
	G "gorgonia.org/gorgonia"
)

// NeuralNet implements a neural network function approximator. A
// NeuralNet only populates a gorgonia.ExprGraph with the network
// function; it holds no VM of its own. An external VM should be used
// to run the computational graph of the network, and the VM should
// always be run before accessing Output().
//
// For example, given a context vector ctx, a prediction is computed
// as:
//
//	Set up VM with network's graph:	vm = NewTapeMachine(net.Graph())
//	Set input to the network:		net.SetInput(ctx)
//	Run the forward pass:			vm.RunAll()
//	Read the prediction:			net.Output()
type NeuralNet interface {
	Graph() *G.ExprGraph
	Clone() (NeuralNet, error)
	CloneWithBatch(int) (NeuralNet, error)
	BatchSize() int
	Features() int
	Outputs() int
	SetInput([]float64) error
	Set(NeuralNet) error
	Learnables() G.Nodes
	Model() []G.ValueGrad
	Output() G.Value
	Prediction() *G.Node
}
