package model

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobandit/initwfn"
	"github.com/samuelfneumann/gobandit/network"
	"github.com/samuelfneumann/gobandit/solver"
	"github.com/samuelfneumann/gobandit/timestep"
	"github.com/samuelfneumann/gobandit/transitions"
)

// newTestConfig returns a Config with a single small hidden layer
func newTestConfig(t *testing.T) Config {
	t.Helper()

	init, err := initwfn.NewGlorotU(1.0)
	if err != nil {
		t.Fatal(err)
	}
	sol, err := solver.NewDefaultAdam(0.01, 4)
	if err != nil {
		t.Fatal(err)
	}

	return Config{
		HiddenSizes: []int{8},
		Biases:      []bool{true},
		Activations: []*network.Activation{network.ReLU()},
		InitWFn:     init,
		Solver:      sol,

		LearnRateDecay: 0.5,
		LearnRateReset: false,
		MaxGradNorm:    0.5,
	}
}

// fillDB stores n transitions of dimension contextDim in a fresh
// transition database
func fillDB(t *testing.T, contextDim, numActions, n int) *transitions.DB {
	t.Helper()

	db, err := transitions.New(contextDim, 0, 14)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < n; i++ {
		backing := make([]float64, contextDim)
		for j := range backing {
			backing[j] = float64(i + j)
		}
		context := mat.NewVecDense(contextDim, backing)
		err := db.Add(timestep.NewTransition(context, i%numActions, 1.0))
		if err != nil {
			t.Fatal(err)
		}
	}
	return db
}

func TestPredictShape(t *testing.T) {
	const features, numActions = 3, 4

	n, err := New(features, numActions, 4, newTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer n.Close()

	predictions, err := n.Predict([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(predictions) != numActions {
		t.Errorf("wrong number of predictions \n\twant(%v) \n\thave(%v)",
			numActions, len(predictions))
	}

	if _, err := n.Predict([]float64{1, 2}); err == nil {
		t.Error("expected an error for a context of the wrong dimension")
	}
}

func TestTrain(t *testing.T) {
	const features, numActions = 3, 2

	n, err := New(features, numActions, 4, newTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer n.Close()

	db := fillDB(t, features, numActions, 10)
	if err := n.Train(db, 2, 4); err != nil {
		t.Fatalf("training failed: %v", err)
	}

	// Two completed epochs decay the learning rate
	want := 0.01 / (1.0 + 0.5*2)
	if got := n.EffectiveLearnRate(); got != want {
		t.Errorf("wrong effective learning rate \n\twant(%v) \n\thave(%v)",
			want, got)
	}
}

func TestTrainEmptyDB(t *testing.T) {
	const features = 3

	n, err := New(features, 2, 4, newTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer n.Close()

	db, err := transitions.New(features, 0, 14)
	if err != nil {
		t.Fatal(err)
	}

	err = n.Train(db, 1, 4)
	if err == nil {
		t.Fatal("expected an error when training on an empty database")
	}
	if !transitions.IsEmptyDB(err) {
		t.Errorf("expected an empty database error, got %v", err)
	}
}

func TestTrainRebuildsGraphOnBatchChange(t *testing.T) {
	const features, numActions = 3, 2

	n, err := New(features, numActions, 4, newTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer n.Close()

	db := fillDB(t, features, numActions, 10)

	if err := n.Train(db, 1, 4); err != nil {
		t.Fatal(err)
	}

	// A different batch size forces a graph rebuild; training must
	// still succeed and predictions must keep their shape
	if err := n.Train(db, 1, 8); err != nil {
		t.Fatalf("training with a new batch size failed: %v", err)
	}

	predictions, err := n.Predict([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(predictions) != numActions {
		t.Errorf("wrong number of predictions after rebuild "+
			"\n\twant(%v) \n\thave(%v)", numActions, len(predictions))
	}
}

func TestLearnRateReset(t *testing.T) {
	const features, numActions = 2, 2

	config := newTestConfig(t)
	config.LearnRateReset = true

	n, err := New(features, numActions, 4, config)
	if err != nil {
		t.Fatal(err)
	}
	defer n.Close()

	db := fillDB(t, features, numActions, 10)

	if err := n.Train(db, 3, 4); err != nil {
		t.Fatal(err)
	}

	// The next Train call restarts the schedule, so the first epoch of
	// a training round always uses the initial rate
	if err := n.Train(db, 1, 4); err != nil {
		t.Fatal(err)
	}
	want := 0.01 / (1.0 + 0.5*1)
	if got := n.EffectiveLearnRate(); got != want {
		t.Errorf("decay schedule was not restarted \n\twant(%v) "+
			"\n\thave(%v)", want, got)
	}
}

func TestInvalidConstruction(t *testing.T) {
	config := newTestConfig(t)

	if _, err := New(0, 2, 4, config); err == nil {
		t.Error("expected an error for 0 features")
	}
	if _, err := New(2, 0, 4, config); err == nil {
		t.Error("expected an error for 0 actions")
	}

	invalid := config
	invalid.InitWFn = nil
	if _, err := New(2, 2, 4, invalid); err == nil {
		t.Error("expected an error for a missing weight initializer")
	}

	invalid = config
	invalid.Solver = nil
	if _, err := New(2, 2, 4, invalid); err == nil {
		t.Error("expected an error for a missing solver")
	}
}
