package egreedy

import (
	"testing"

	"github.com/samuelfneumann/gobandit/bandit/gaussian"
)

func TestUpdateTracksMeans(t *testing.T) {
	b, err := gaussian.New(2, 2, 0.0, 14)
	if err != nil {
		t.Fatal(err)
	}

	e, err := New(b, Config{Epsilon: 0.1}, 14)
	if err != nil {
		t.Fatal(err)
	}

	rewards := []float64{1, 3, 5}
	for _, reward := range rewards {
		if err := e.Update(nil, 0, reward); err != nil {
			t.Fatal(err)
		}
	}

	if e.Mean(0) != 3 {
		t.Errorf("wrong mean for action 0 \n\twant(3) \n\thave(%v)",
			e.Mean(0))
	}
	if e.Mean(1) != 0 {
		t.Errorf("untaken action should have mean 0, got %v", e.Mean(1))
	}
}

func TestGreedySelection(t *testing.T) {
	b, err := gaussian.New(3, 2, 0.0, 14)
	if err != nil {
		t.Fatal(err)
	}

	// With epsilon 0, the agent must always take the highest-mean
	// action
	e, err := New(b, Config{Epsilon: 0.0}, 14)
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Update(nil, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := e.Update(nil, 1, 5); err != nil {
		t.Fatal(err)
	}
	if err := e.Update(nil, 2, 3); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 25; i++ {
		action, err := e.SelectAction(nil)
		if err != nil {
			t.Fatal(err)
		}
		if action != 1 {
			t.Errorf("greedy agent took action %v instead of 1", action)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	if err := (Config{Epsilon: -0.5}).Validate(); err == nil {
		t.Error("expected an error for a negative epsilon")
	}
	if err := (Config{Epsilon: 1.5}).Validate(); err == nil {
		t.Error("expected an error for epsilon > 1")
	}
}

func TestInvalidUpdate(t *testing.T) {
	b, err := gaussian.New(2, 2, 0.0, 14)
	if err != nil {
		t.Fatal(err)
	}

	e, err := New(b, Config{Epsilon: 0.0}, 14)
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Update(nil, 2, 1); err == nil {
		t.Error("expected an error for an out-of-range action")
	}
	if err := e.Update(nil, -1, 1); err == nil {
		t.Error("expected an error for a negative action")
	}
}
