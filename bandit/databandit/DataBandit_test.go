package databandit

import (
	"os"
	"path/filepath"
	"testing"
)

// writeCSV writes a small 3-class dataset and returns its path
func writeCSV(t *testing.T) string {
	t.Helper()

	data := "1.0,2.0,cat\n" +
		"3.0,4.0,dog\n" +
		"5.0,6.0,cat\n" +
		"7.0,8.0,bird\n"

	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFromCSV(t *testing.T) {
	b, err := FromCSV(writeCSV(t), -1, 14)
	if err != nil {
		t.Fatal(err)
	}

	// Labels are enumerated in order of first appearance: cat, dog,
	// bird
	if b.NumActions() != 3 {
		t.Errorf("expected 3 actions \n\twant(3) \n\thave(%v)",
			b.NumActions())
	}
	if b.ContextDim() != 2 {
		t.Errorf("expected 2 context features \n\twant(2) \n\thave(%v)",
			b.ContextDim())
	}
}

func TestRewards(t *testing.T) {
	features := [][]float64{{0, 0}, {1, 1}}
	labels := []int{0, 1}

	b, err := New(features, labels, 14)
	if err != nil {
		t.Fatal(err)
	}

	step := b.Reset()
	for i := 0; i < 20; i++ {
		// The context identifies the row, so the correct action is
		// known ahead of the step
		correct := int(step.Context.AtVec(0))

		step, err = b.Step(correct)
		if err != nil {
			t.Fatal(err)
		}
		if step.Reward != correctReward {
			t.Errorf("correct action got reward %v", step.Reward)
		}
		if step.BestReward != correctReward {
			t.Errorf("best reward should always be %v, got %v",
				correctReward, step.BestReward)
		}

		wrong := 1 - int(step.Context.AtVec(0))
		step, err = b.Step(wrong)
		if err != nil {
			t.Fatal(err)
		}
		if step.Reward != incorrectReward {
			t.Errorf("incorrect action got reward %v", step.Reward)
		}
	}
}

func TestInvalidData(t *testing.T) {
	if _, err := New([][]float64{}, []int{}, 14); err == nil {
		t.Error("expected an error for an empty dataset")
	}
	if _, err := New([][]float64{{1}}, []int{0, 1}, 14); err == nil {
		t.Error("expected an error when rows and labels disagree")
	}
	if _, err := New([][]float64{{1}, {2, 3}}, []int{0, 1}, 14); err == nil {
		t.Error("expected an error for ragged feature rows")
	}
	if _, err := New([][]float64{{1}}, []int{-1}, 14); err == nil {
		t.Error("expected an error for a negative label")
	}
}
