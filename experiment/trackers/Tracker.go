// Package trackers implements tracking of the data generated during a
// bandit experiment and saving that data to disk.
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/gobandit/timestep"
)

// Tracker tracks experiment data. An experiment sends every TimeStep
// to its Trackers through Track(); each Tracker decides which data
// from the TimeStep it caches. Save() writes all cached data to disk,
// usually once the experiment has finished.
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// saveData gob-encodes a float64 series to the file at filename
func saveData(filename string, data []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(data); err != nil {
		return fmt.Errorf("save: could not encode data: %v", err)
	}
	return nil
}

// LoadData loads a float64 series saved by a Tracker from the file at
// filename
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loaddata: could not open file: %v", err)
	}
	defer file.Close()

	var data []float64
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loaddata: could not decode data: %v", err)
	}
	return data, nil
}
