package network

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Layer implements a single layer of a neural network
type Layer interface {
	fwd(*G.Node) (*G.Node, error)
	CloneTo(g *G.ExprGraph) Layer
	Weights() *G.Node
	Bias() *G.Node
	Activation() *Activation
}

// fcLayer implements a fully connected layer of a feedforward neural
// network with an optional bias unit, an activation, and optional
// inverted dropout applied after the activation.
type fcLayer struct {
	weights *G.Node
	bias    *G.Node
	act     *Activation
	dropout float64 // <= 0 means no dropout
}

// fwd adds the forward pass of the fcLayer to the computational graph
func (f *fcLayer) fwd(x *G.Node) (*G.Node, error) {
	if f.Weights() != nil {
		x = G.Must(G.Mul(x, f.Weights()))
	}
	if f.Bias() != nil {
		// Broadcast the bias weights to all samples along the batch
		// dimension
		x = G.Must(G.BroadcastAdd(x, f.Bias(), nil, []byte{0}))
	}

	if f.Activation() != nil && !f.Activation().IsIdentity() {
		var err error
		x, err = f.Activation().fwd(x)
		if err != nil {
			return nil, fmt.Errorf("fwd: could not compute activation: %v",
				err)
		}
	}

	if f.dropout > 0 {
		var err error
		x, err = G.Dropout(x, f.dropout)
		if err != nil {
			return nil, fmt.Errorf("fwd: could not apply dropout: %v", err)
		}
	}

	return x, nil
}

// CloneTo clones an fcLayer to a new computational graph
func (f *fcLayer) CloneTo(g *G.ExprGraph) Layer {
	var newWeights, newBias *G.Node

	if f.Weights() != nil {
		newWeights = f.Weights().CloneTo(g)
	}
	if f.Bias() != nil {
		newBias = f.Bias().CloneTo(g)
	}

	return &fcLayer{
		weights: newWeights,
		bias:    newBias,
		act:     f.act,
		dropout: f.dropout,
	}
}

func (f *fcLayer) Activation() *Activation {
	return f.act
}

func (f *fcLayer) Bias() *G.Node {
	return f.bias
}

func (f *fcLayer) Weights() *G.Node {
	return f.weights
}

// addFCLayers creates the fully connected layers of an MLP on graph g.
// For index i, sizes[i] is the number of units in layer i, biases[i]
// determines whether layer i has a bias unit, and activations[i] is
// the activation of layer i. The dropout parameter is the dropout
// probability applied after each layer's activation; the final layer
// never has dropout so that predictions themselves are not dropped.
func addFCLayers(g *G.ExprGraph, sizes []int, biases []bool,
	activations []*Activation, init G.InitWFn, features int,
	dropout float64) []Layer {
	layers := make([]Layer, len(sizes))

	inputs := features
	for i, size := range sizes {
		weights := G.NewMatrix(
			g,
			tensor.Float64,
			G.WithShape(inputs, size),
			G.WithName(fmt.Sprintf("L%vW", i)),
			G.WithInit(init),
		)

		var bias *G.Node
		if biases[i] {
			bias = G.NewVector(
				g,
				tensor.Float64,
				G.WithShape(size),
				G.WithName(fmt.Sprintf("L%vB", i)),
				G.WithInit(G.Zeroes()),
			)
		}

		p := dropout
		if i == len(sizes)-1 {
			p = 0
		}

		layers[i] = &fcLayer{
			weights: weights,
			bias:    bias,
			act:     activations[i],
			dropout: p,
		}
		inputs = size
	}

	return layers
}
