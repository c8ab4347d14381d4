package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/bandit"
	"github.com/samuelfneumann/gobandit/bandit/databandit"
	"github.com/samuelfneumann/gobandit/bandit/gaussian"
	"github.com/samuelfneumann/gobandit/experiment"
)

// Available bandit types
const (
	csvBandit      string = "csv"
	gaussianBandit string = "gaussian"
)

// configFile describes a full experiment: the bandit to solve, the
// agent to solve it with, and the experiment parameters.
type configFile struct {
	Seed       uint64
	Bandit     banditConfig
	Agent      agentConfig
	Experiment experimentConfig
}

// banditConfig describes the bandit to run the experiment on. For csv
// bandits, Path points at the dataset and LabelCol gives the label
// column (negative means the last column). For gaussian bandits,
// NumActions, ContextDim, and NoiseStd describe the synthetic bandit.
type banditConfig struct {
	Type string

	// csv bandits
	Path     string
	LabelCol int

	// gaussian bandits
	NumActions int
	ContextDim int
	NoiseStd   float64
}

// agentConfig names a registered agent type and holds its (typed)
// configuration
type agentConfig struct {
	Type   string
	Config json.RawMessage
}

// experimentConfig holds the experiment parameters and the files that
// tracked data is saved to. Empty filenames disable the respective
// tracker.
type experimentConfig struct {
	MaxSteps      uint
	UpdateAfter   uint
	TrainEvery    uint
	TrainEpochs   int
	BatchSize     int
	ProgressEvery uint

	RewardFile string
	RegretFile string
}

// loadConfig reads and unmarshals the configuration file at path
func loadConfig(path string) (configFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return configFile{}, fmt.Errorf("loadconfig: could not read "+
			"config: %v", err)
	}

	var config configFile
	if err := json.Unmarshal(data, &config); err != nil {
		return configFile{}, fmt.Errorf("loadconfig: could not parse "+
			"config: %v", err)
	}
	return config, nil
}

// createBandit creates the bandit that the config describes
func (c configFile) createBandit() (bandit.Bandit, error) {
	switch c.Bandit.Type {
	case csvBandit:
		return databandit.FromCSV(c.Bandit.Path, c.Bandit.LabelCol, c.Seed)

	case gaussianBandit:
		return gaussian.New(c.Bandit.NumActions, c.Bandit.ContextDim,
			c.Bandit.NoiseStd, c.Seed)
	}

	return nil, fmt.Errorf("createbandit: no such bandit type %v",
		c.Bandit.Type)
}

// createAgent creates the agent that the config describes through the
// agent config registry
func (c configFile) createAgent(b bandit.Bandit) (agent.Agent, error) {
	agentConf, err := agent.CreateConfig(agent.Type(c.Agent.Type),
		c.Agent.Config)
	if err != nil {
		return nil, fmt.Errorf("createagent: %v", err)
	}
	if err := agentConf.Validate(); err != nil {
		return nil, fmt.Errorf("createagent: %v", err)
	}
	return agentConf.CreateAgent(b, c.Seed)
}

// experimentConfig converts the file's experiment section into an
// experiment.Config
func (c configFile) experimentConfig() experiment.Config {
	return experiment.Config{
		MaxSteps:      c.Experiment.MaxSteps,
		UpdateAfter:   c.Experiment.UpdateAfter,
		TrainEvery:    c.Experiment.TrainEvery,
		TrainEpochs:   c.Experiment.TrainEpochs,
		BatchSize:     c.Experiment.BatchSize,
		ProgressEvery: c.Experiment.ProgressEvery,
	}
}
