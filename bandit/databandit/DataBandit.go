// Package databandit implements contextual bandits backed by
// classification datasets.
//
// A dataset-backed bandit turns an N-class classification dataset into
// an N-armed contextual bandit: each row's features become a context,
// each class becomes an action, and the agent receives a reward of 1
// for choosing the action equal to the row's class label and 0
// otherwise. Rows are served in a random order and wrap around once
// exhausted.
package databandit

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobandit/bandit"
	ts "github.com/samuelfneumann/gobandit/timestep"
)

// Rewards for correct and incorrect classification
const (
	correctReward   float64 = 1.0
	incorrectReward float64 = 0.0
)

// DataBandit implements a contextual bandit over a classification
// dataset
type DataBandit struct {
	features   [][]float64
	labels     []int
	numActions int
	contextDim int

	order      []int // Shuffled order in which rows are served
	cursor     int   // Index into order of the current context
	stepNumber int

	rng *rand.Rand
}

// New creates and returns a new DataBandit from a feature matrix and
// integer class labels. Labels must be enumerated from 0. The seed
// parameter seeds the RNG used to shuffle the row order.
func New(features [][]float64, labels []int, seed uint64) (*DataBandit,
	error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("new: dataset must have at least one row")
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("new: have %v feature rows but %v labels",
			len(features), len(labels))
	}

	contextDim := len(features[0])
	numActions := 0
	for i, row := range features {
		if len(row) != contextDim {
			return nil, fmt.Errorf("new: row %v has %v features, "+
				"expected %v", i, len(row), contextDim)
		}
		if labels[i] < 0 {
			return nil, fmt.Errorf("new: labels must be enumerated "+
				"starting from 0, got %v", labels[i])
		}
		if labels[i]+1 > numActions {
			numActions = labels[i] + 1
		}
	}

	source := rand.NewSource(seed)
	rng := rand.New(source)

	order := rng.Perm(len(features))

	return &DataBandit{
		features:   features,
		labels:     labels,
		numActions: numActions,
		contextDim: contextDim,
		order:      order,
		rng:        rng,
	}, nil
}

// FromCSV creates and returns a new DataBandit from a CSV file of
// feature columns and a single label column. If labelCol < 0, the last
// column is used as the label column. Feature fields must be numeric.
// Label fields may be arbitrary strings, which are enumerated as
// actions in order of first appearance.
func FromCSV(path string, labelCol int, seed uint64) (*DataBandit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fromcsv: could not open dataset: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fromcsv: could not read dataset: %v", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("fromcsv: dataset is empty")
	}

	if labelCol < 0 {
		labelCol = len(records[0]) - 1
	}
	if labelCol >= len(records[0]) {
		return nil, fmt.Errorf("fromcsv: label column out of range "+
			"\n\twant(< %v) \n\thave(%v)", len(records[0]), labelCol)
	}

	features := make([][]float64, len(records))
	labels := make([]int, len(records))
	classes := make(map[string]int)

	for i, record := range records {
		if len(record) != len(records[0]) {
			return nil, fmt.Errorf("fromcsv: row %v has %v columns, "+
				"expected %v", i, len(record), len(records[0]))
		}

		row := make([]float64, 0, len(record)-1)
		for j, field := range record {
			if j == labelCol {
				continue
			}
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("fromcsv: non-numeric feature "+
					"at row %v column %v: %v", i, j, err)
			}
			row = append(row, value)
		}

		label, seen := classes[record[labelCol]]
		if !seen {
			label = len(classes)
			classes[record[labelCol]] = label
		}

		features[i] = row
		labels[i] = label
	}

	return New(features, labels, seed)
}

// Reset resets the bandit to the beginning of its (shuffled) row order
// and returns the first context
func (d *DataBandit) Reset() ts.TimeStep {
	d.cursor = 0
	d.stepNumber = 0
	return ts.New(ts.First, d.context(), 0, 0, 0, d.stepNumber)
}

// Step scores the action against the current context and advances the
// bandit to the next row. The returned TimeStep holds the reward for
// the action, the best attainable reward, and the next context.
func (d *DataBandit) Step(action int) (ts.TimeStep, error) {
	if action < 0 || action >= d.numActions {
		return ts.TimeStep{}, fmt.Errorf("step: invalid action "+
			"\n\twant(∈[0, %v)) \n\thave(%v)", d.numActions, action)
	}

	reward := incorrectReward
	if action == d.labels[d.order[d.cursor]] {
		reward = correctReward
	}

	d.cursor++
	if d.cursor >= len(d.order) {
		// Reshuffle so repeated passes over the dataset do not repeat
		// the same row order
		d.order = d.rng.Perm(len(d.order))
		d.cursor = 0
	}
	d.stepNumber++

	return ts.New(ts.Mid, d.context(), action, reward, correctReward,
		d.stepNumber), nil
}

// context returns the context vector of the current row
func (d *DataBandit) context() mat.Vector {
	row := d.features[d.order[d.cursor]]
	backing := make([]float64, len(row))
	copy(backing, row)
	return mat.NewVecDense(len(backing), backing)
}

// NumActions returns the number of actions, which equals the number of
// classes in the dataset
func (d *DataBandit) NumActions() int {
	return d.numActions
}

// ContextDim returns the number of features in each context
func (d *DataBandit) ContextDim() int {
	return d.contextDim
}

// ObservationSpec returns the observation specification of the bandit
func (d *DataBandit) ObservationSpec() bandit.Spec {
	shape := mat.NewVecDense(d.contextDim, nil)

	low := make([]float64, d.contextDim)
	high := make([]float64, d.contextDim)
	for i := range low {
		low[i] = math.Inf(-1)
		high[i] = math.Inf(1)
	}
	lowVec := mat.NewVecDense(d.contextDim, low)
	highVec := mat.NewVecDense(d.contextDim, high)

	return bandit.NewSpec(shape, bandit.Observation, lowVec, highVec,
		bandit.Continuous)
}

// ActionSpec returns the action specification of the bandit
func (d *DataBandit) ActionSpec() bandit.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(d.numActions - 1)})

	return bandit.NewSpec(shape, bandit.Action, lowerBound, upperBound,
		bandit.Discrete)
}

// RewardSpec returns the reward specification of the bandit
func (d *DataBandit) RewardSpec() bandit.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{incorrectReward})
	upperBound := mat.NewVecDense(1, []float64{correctReward})

	return bandit.NewSpec(shape, bandit.Reward, lowerBound, upperBound,
		bandit.Discrete)
}

// String returns the string representation of the bandit
func (d *DataBandit) String() string {
	return fmt.Sprintf("DataBandit | Rows: %v | Actions: %v | Context "+
		"Dim: %v", len(d.features), d.numActions, d.contextDim)
}
