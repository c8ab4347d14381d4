package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/experiment"
	"github.com/samuelfneumann/gobandit/experiment/trackers"
	"github.com/samuelfneumann/gobandit/log"

	// Register agent config types
	_ "github.com/samuelfneumann/gobandit/agent/egreedy"
	_ "github.com/samuelfneumann/gobandit/agent/neuralgreedy"
)

func runCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "run <config.json>",
		Short: "Run the bandit experiment described by a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(args[0], logLevel)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info",
		"logging level (debug, info, warn, error)")

	return cmd
}

func runExperiment(configPath, logLevel string) error {
	logger := log.New(os.Stderr, logLevel)

	config, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	b, err := config.createBandit()
	if err != nil {
		return err
	}

	a, err := config.createAgent(b)
	if err != nil {
		return err
	}
	if closer, ok := a.(agent.Closer); ok {
		defer closer.Close()
	}

	var track []trackers.Tracker
	if config.Experiment.RewardFile != "" {
		track = append(track, trackers.NewReward(config.Experiment.RewardFile))
	}
	if config.Experiment.RegretFile != "" {
		track = append(track, trackers.NewRegret(config.Experiment.RegretFile))
	}

	exp, err := experiment.NewBandit(b, a, config.experimentConfig(),
		logger, track...)
	if err != nil {
		return err
	}

	if err := exp.Run(); err != nil {
		return err
	}
	if err := exp.Save(); err != nil {
		return err
	}

	fmt.Printf("total reward: %v\ntotal regret: %v\n", exp.TotalReward(),
		exp.TotalRegret())
	return nil
}
