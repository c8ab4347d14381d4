package transitions

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobandit/timestep"
)

func TestSampleEmptyDB(t *testing.T) {
	db, err := New(3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	_, _, _, err = db.Sample(4)
	if err == nil {
		t.Error("expected an error when sampling an empty database")
	}
	if !IsEmptyDB(err) {
		t.Errorf("expected an empty database error, got %v", err)
	}
}

func TestAddInvalidContextDim(t *testing.T) {
	db, err := New(3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	context := mat.NewVecDense(2, []float64{1, 2})
	if err := db.Add(timestep.NewTransition(context, 0, 1)); err == nil {
		t.Error("expected an error when adding a context of the wrong " +
			"dimension")
	}
	if db.Len() != 0 {
		t.Errorf("invalid transition was stored: db length = %v", db.Len())
	}
}

func TestSample(t *testing.T) {
	const contextDim = 2
	db, err := New(contextDim, 0, 14)
	if err != nil {
		t.Fatal(err)
	}

	// Store transitions whose fields are all recoverable from the
	// action: context = (action, action), reward = 2 * action
	const stored = 10
	for i := 0; i < stored; i++ {
		context := mat.NewVecDense(contextDim,
			[]float64{float64(i), float64(i)})
		err := db.Add(timestep.NewTransition(context, i, float64(2*i)))
		if err != nil {
			t.Fatal(err)
		}
	}
	if db.Len() != stored {
		t.Errorf("expected %v stored transitions, got %v", stored, db.Len())
	}

	const batchSize = 32
	contexts, actions, rewards, err := db.Sample(batchSize)
	if err != nil {
		t.Fatal(err)
	}

	if len(contexts) != batchSize*contextDim {
		t.Errorf("expected %v context values, got %v",
			batchSize*contextDim, len(contexts))
	}
	if len(actions) != batchSize || len(rewards) != batchSize {
		t.Errorf("expected %v actions and rewards, got %v and %v",
			batchSize, len(actions), len(rewards))
	}

	// Each sampled tuple must be internally consistent
	for i := 0; i < batchSize; i++ {
		action := actions[i]
		if action < 0 || action >= stored {
			t.Errorf("sampled unknown action %v", action)
		}
		if contexts[i*contextDim] != float64(action) ||
			contexts[i*contextDim+1] != float64(action) {
			t.Errorf("context %v does not match action %v",
				contexts[i*contextDim:(i+1)*contextDim], action)
		}
		if rewards[i] != float64(2*action) {
			t.Errorf("reward %v does not match action %v", rewards[i],
				action)
		}
	}
}

func TestMaxCapacityEvictsOldest(t *testing.T) {
	const capacity = 4
	db, err := New(1, capacity, 14)
	if err != nil {
		t.Fatal(err)
	}

	const added = 10
	for i := 0; i < added; i++ {
		context := mat.NewVecDense(1, []float64{float64(i)})
		err := db.Add(timestep.NewTransition(context, i, 0))
		if err != nil {
			t.Fatal(err)
		}
	}

	if db.Len() != capacity {
		t.Fatalf("expected db length %v, got %v", capacity, db.Len())
	}

	// Only the last capacity actions should remain
	_, actions, _, err := db.Sample(64)
	if err != nil {
		t.Fatal(err)
	}
	for _, action := range actions {
		if action < added-capacity {
			t.Errorf("sampled evicted action %v", action)
		}
	}
}
