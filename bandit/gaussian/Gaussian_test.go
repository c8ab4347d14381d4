package gaussian

import (
	"testing"
)

func TestDeterminism(t *testing.T) {
	const seed uint64 = 14

	b1, err := New(4, 8, 0.1, seed)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := New(4, 8, 0.1, seed)
	if err != nil {
		t.Fatal(err)
	}

	step1 := b1.Reset()
	step2 := b2.Reset()
	for i := 0; i < step1.Context.Len(); i++ {
		if step1.Context.AtVec(i) != step2.Context.AtVec(i) {
			t.Fatalf("contexts differ at index %v under the same seed", i)
		}
	}

	for i := 0; i < 25; i++ {
		action := i % b1.NumActions()
		step1, err = b1.Step(action)
		if err != nil {
			t.Fatal(err)
		}
		step2, err = b2.Step(action)
		if err != nil {
			t.Fatal(err)
		}
		if step1.Reward != step2.Reward {
			t.Errorf("rewards differ at step %v under the same seed: "+
				"\n\twant(%v) \n\thave(%v)", i, step1.Reward, step2.Reward)
		}
	}
}

func TestBestRewardBounds(t *testing.T) {
	// In a noiseless bandit, no action can beat the best reward
	b, err := New(5, 6, 0.0, 14)
	if err != nil {
		t.Fatal(err)
	}

	b.Reset()
	for i := 0; i < 100; i++ {
		action := i % b.NumActions()
		step, err := b.Step(action)
		if err != nil {
			t.Fatal(err)
		}
		if step.Reward > step.BestReward {
			t.Errorf("step %v: reward exceeds best reward "+
				"\n\twant(<= %v) \n\thave(%v)", i, step.BestReward,
				step.Reward)
		}
	}
}

func TestInvalidAction(t *testing.T) {
	b, err := New(3, 2, 0.0, 14)
	if err != nil {
		t.Fatal(err)
	}
	b.Reset()

	if _, err := b.Step(-1); err == nil {
		t.Error("expected an error for a negative action")
	}
	if _, err := b.Step(3); err == nil {
		t.Error("expected an error for an out-of-range action")
	}
}

func TestInvalidConstruction(t *testing.T) {
	if _, err := New(0, 2, 0.0, 14); err == nil {
		t.Error("expected an error for 0 actions")
	}
	if _, err := New(2, 0, 0.0, 14); err == nil {
		t.Error("expected an error for a 0-dimensional context")
	}
	if _, err := New(2, 2, -1.0, 14); err == nil {
		t.Error("expected an error for a negative noise std")
	}
}
