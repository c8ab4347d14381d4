// Package experiment implements functionality for running a bandit
// experiment
package experiment

import (
	"github.com/samuelfneumann/gobandit/experiment/trackers"
)

// Experiment outlines structs that can run experiments. Run() runs
// the experiment to completion, sending each TimeStep to the
// registered Trackers. Save() writes all tracked data to disk and is
// usually called after Run() returns. Register() adds a Tracker to a
// (possibly already running) experiment, which is useful for tracking
// data only after a specified event.
type Experiment interface {
	Run() error
	Save() error
	Register(t trackers.Tracker)
}
