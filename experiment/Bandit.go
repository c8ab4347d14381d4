package experiment

import (
	"fmt"

	"github.com/gosuri/uilive"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/bandit"
	"github.com/samuelfneumann/gobandit/experiment/trackers"
	"github.com/samuelfneumann/gobandit/log"
	ts "github.com/samuelfneumann/gobandit/timestep"
	"github.com/samuelfneumann/gobandit/transitions"
)

// Config represents a configuration of a bandit experiment
type Config struct {
	// MaxSteps is the total number of bandit rounds to run
	MaxSteps uint

	// UpdateAfter is the number of rounds to run before the first
	// training round of the agent
	UpdateAfter uint

	// TrainEvery determines how many rounds pass between agent
	// training rounds
	TrainEvery uint

	// TrainEpochs and BatchSize are handed to the agent on every
	// training round
	TrainEpochs int
	BatchSize   int

	// ProgressEvery determines how many rounds pass between updates
	// of the live terminal progress line. A value of 0 disables the
	// progress line.
	ProgressEvery uint
}

// Validate checks a Config to ensure it describes a valid experiment
func (c Config) Validate() error {
	if c.MaxSteps == 0 {
		return fmt.Errorf("config: max steps must be > 0")
	}
	if c.TrainEvery == 0 {
		return fmt.Errorf("config: train interval must be > 0")
	}
	if c.TrainEpochs < 1 {
		return fmt.Errorf("config: train epochs must be > 0")
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("config: batch size must be > 0")
	}
	return nil
}

// Bandit is an Experiment that runs a single agent online on a single
// bandit: each round the agent selects an action for the current
// context, the bandit scores it, and the agent records the transition.
// The agent is trained every TrainEvery rounds once UpdateAfter rounds
// have passed.
type Bandit struct {
	bandit  bandit.Bandit
	agent   agent.Agent
	config  Config
	logger  *log.Logger
	track   []trackers.Tracker
	started bool

	totalReward float64
	totalRegret float64
}

// NewBandit creates and returns a new online bandit experiment on a
// given bandit with a given agent. The t parameter is a slice of
// Trackers which determine what data is saved.
func NewBandit(b bandit.Bandit, a agent.Agent, config Config,
	logger *log.Logger, t ...trackers.Tracker) (*Bandit, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("newbandit: %v", err)
	}
	if logger == nil {
		logger = log.NewDefault()
	}

	return &Bandit{
		bandit: b,
		agent:  a,
		config: config,
		logger: logger,
		track:  t,
	}, nil
}

// Register registers a Tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (b *Bandit) Register(t trackers.Tracker) {
	b.track = append(b.track, t)
}

// Run runs the entire experiment for all rounds
func (b *Bandit) Run() error {
	if b.started {
		return fmt.Errorf("run: experiment already run")
	}
	b.started = true

	b.logger.With(log.LogParams{
		"bandit":   fmt.Sprintf("%v", b.bandit),
		"maxSteps": b.config.MaxSteps,
	}).Info("starting bandit experiment")

	step := b.bandit.Reset()
	b.trackStep(step)
	context := step.Context

	var writer *uilive.Writer
	if b.config.ProgressEvery > 0 {
		writer = uilive.New()
	}

	for t := uint(1); t <= b.config.MaxSteps; t++ {
		action, err := b.agent.SelectAction(context)
		if err != nil {
			return fmt.Errorf("run: could not select action: %v", err)
		}

		step, err = b.bandit.Step(action)
		if err != nil {
			return fmt.Errorf("run: could not step bandit: %v", err)
		}

		err = b.agent.Update(context, action, step.Reward)
		if err != nil {
			return fmt.Errorf("run: could not update agent: %v", err)
		}

		b.totalReward += step.Reward
		b.totalRegret += step.BestReward - step.Reward
		b.trackStep(step)

		if t >= b.config.UpdateAfter && t%b.config.TrainEvery == 0 {
			err := b.agent.Step(b.config.BatchSize, b.config.TrainEpochs)
			switch {
			case transitions.IsEmptyDB(err):
				b.logger.Debug("skipping training round: no transitions")
			case err != nil:
				return fmt.Errorf("run: could not train agent: %v", err)
			default:
				b.logger.With(log.LogParams{
					"step":      t,
					"avgReward": b.totalReward / float64(t),
					"regret":    b.totalRegret,
				}).Debug("trained agent")
			}
		}

		if writer != nil && t%b.config.ProgressEvery == 0 {
			fmt.Fprintf(writer, "step %v/%v | avg reward %.4f | "+
				"regret %.4f\n", t, b.config.MaxSteps,
				b.totalReward/float64(t), b.totalRegret)
			writer.Flush()
		}

		context = step.Context
	}

	b.logger.With(log.LogParams{
		"avgReward": b.totalReward / float64(b.config.MaxSteps),
		"regret":    b.totalRegret,
	}).Info("bandit experiment finished")

	return nil
}

// Save saves all the data cached by the Trackers to disk
func (b *Bandit) Save() error {
	for _, tracker := range b.track {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// TotalReward returns the total reward accumulated over the experiment
func (b *Bandit) TotalReward() float64 {
	return b.totalReward
}

// TotalRegret returns the total regret accumulated over the experiment
func (b *Bandit) TotalRegret() float64 {
	return b.totalRegret
}

// trackStep sends the current TimeStep to every registered Tracker
func (b *Bandit) trackStep(step ts.TimeStep) {
	for _, tracker := range b.track {
		tracker.Track(step)
	}
}
