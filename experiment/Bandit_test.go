package experiment

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gobandit/agent/egreedy"
	"github.com/samuelfneumann/gobandit/bandit/gaussian"
	"github.com/samuelfneumann/gobandit/experiment/trackers"
	"github.com/samuelfneumann/gobandit/log"
)

func TestRun(t *testing.T) {
	const maxSteps = 50

	b, err := gaussian.New(3, 4, 0.1, 14)
	if err != nil {
		t.Fatal(err)
	}

	a, err := egreedy.New(b, egreedy.Config{Epsilon: 0.1}, 14)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	rewardFile := filepath.Join(dir, "rewards.bin")
	regretFile := filepath.Join(dir, "regret.bin")

	config := Config{
		MaxSteps:    maxSteps,
		UpdateAfter: 10,
		TrainEvery:  5,
		TrainEpochs: 1,
		BatchSize:   8,
	}

	exp, err := NewBandit(b, a, config, log.New(io.Discard, "error"),
		trackers.NewReward(rewardFile), trackers.NewRegret(regretFile))
	if err != nil {
		t.Fatal(err)
	}

	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}
	if err := exp.Save(); err != nil {
		t.Fatal(err)
	}

	rewards, err := trackers.LoadData(rewardFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(rewards) != maxSteps {
		t.Errorf("wrong number of tracked rewards \n\twant(%v) "+
			"\n\thave(%v)", maxSteps, len(rewards))
	}

	regrets, err := trackers.LoadData(regretFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(regrets) != maxSteps {
		t.Errorf("wrong number of tracked regrets \n\twant(%v) "+
			"\n\thave(%v)", maxSteps, len(regrets))
	}

	// Cumulative regret never decreases
	for i := 1; i < len(regrets); i++ {
		if regrets[i] < regrets[i-1] {
			t.Errorf("cumulative regret decreased at step %v: %v -> %v",
				i, regrets[i-1], regrets[i])
		}
	}

	total := 0.0
	for _, reward := range rewards {
		total += reward
	}
	if diff := total - exp.TotalReward(); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("tracked rewards do not sum to the total reward "+
			"\n\twant(%v) \n\thave(%v)", exp.TotalReward(), total)
	}
}

func TestRunTwiceFails(t *testing.T) {
	b, err := gaussian.New(2, 2, 0.0, 14)
	if err != nil {
		t.Fatal(err)
	}
	a, err := egreedy.New(b, egreedy.Config{Epsilon: 0.0}, 14)
	if err != nil {
		t.Fatal(err)
	}

	config := Config{
		MaxSteps:    5,
		TrainEvery:  1,
		TrainEpochs: 1,
		BatchSize:   1,
	}
	exp, err := NewBandit(b, a, config, log.New(io.Discard, "error"))
	if err != nil {
		t.Fatal(err)
	}

	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}
	if err := exp.Run(); err == nil {
		t.Error("expected an error when running an experiment twice")
	}
}

func TestInvalidConfig(t *testing.T) {
	invalid := []Config{
		{MaxSteps: 0, TrainEvery: 1, TrainEpochs: 1, BatchSize: 1},
		{MaxSteps: 1, TrainEvery: 0, TrainEpochs: 1, BatchSize: 1},
		{MaxSteps: 1, TrainEvery: 1, TrainEpochs: 0, BatchSize: 1},
		{MaxSteps: 1, TrainEvery: 1, TrainEpochs: 1, BatchSize: 0},
	}
	for i, config := range invalid {
		if err := config.Validate(); err == nil {
			t.Errorf("config %v: expected a validation error", i)
		}
	}
}
