// Package transitions implements the database of (context, action,
// reward) tuples that contextual bandit agents retrain their reward
// models on.
package transitions

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gobandit/timestep"
)

// DB implements a transition database. Contexts are stored in a single
// flat backing slice in row major order so that sampled batches can be
// copied directly into tensor backings.
//
// Unlike a sliding-window replay buffer, a DB samples uniformly with
// replacement from everything it has stored: reward models are fit to
// bootstrap batches of the full interaction history. A maximum
// capacity may still be set, in which case the oldest transitions are
// evicted first.
type DB struct {
	contexts []float64
	actions  []int
	rewards  []float64

	contextDim  int
	maxCapacity int // <= 0 means unbounded
	evict       int // index of the next transition to evict when full

	rng *rand.Rand
}

// New creates and returns a new DB storing transitions whose contexts
// have contextDim features. If maxCapacity > 0, the DB holds at most
// maxCapacity transitions, evicting the oldest first. The seed
// parameter seeds the RNG used to sample batches.
func New(contextDim, maxCapacity int, seed uint64) (*DB, error) {
	if contextDim < 1 {
		return nil, fmt.Errorf("new: context dimension must be > 0")
	}

	source := rand.NewSource(seed)
	rng := rand.New(source)

	return &DB{
		contextDim:  contextDim,
		maxCapacity: maxCapacity,
		rng:         rng,
	}, nil
}

// Add adds a transition to the database, evicting the oldest stored
// transition if the database is at capacity.
func (db *DB) Add(t timestep.Transition) error {
	if t.Context == nil || t.Context.Len() != db.contextDim {
		have := 0
		if t.Context != nil {
			have = t.Context.Len()
		}
		return fmt.Errorf("add: invalid context dimension \n\twant(%v) "+
			"\n\thave(%v)", db.contextDim, have)
	}

	if db.maxCapacity > 0 && db.Len() == db.maxCapacity {
		start := db.evict * db.contextDim
		for i := 0; i < db.contextDim; i++ {
			db.contexts[start+i] = t.Context.AtVec(i)
		}
		db.actions[db.evict] = t.Action
		db.rewards[db.evict] = t.Reward
		db.evict = (db.evict + 1) % db.maxCapacity
		return nil
	}

	for i := 0; i < db.contextDim; i++ {
		db.contexts = append(db.contexts, t.Context.AtVec(i))
	}
	db.actions = append(db.actions, t.Action)
	db.rewards = append(db.rewards, t.Reward)
	return nil
}

// Sample samples a batch of transitions uniformly with replacement
// and returns the batch as a row major context matrix backing, a slice
// of actions, and a slice of rewards.
func (db *DB) Sample(batchSize int) ([]float64, []int, []float64, error) {
	if db.Len() == 0 {
		return nil, nil, nil, &DBError{Op: "sample", Err: errEmptyDB}
	}
	if batchSize < 1 {
		return nil, nil, nil, fmt.Errorf("sample: batch size must be > 0")
	}

	contextBatch := make([]float64, batchSize*db.contextDim)
	actionBatch := make([]int, batchSize)
	rewardBatch := make([]float64, batchSize)

	for i := 0; i < batchSize; i++ {
		index := db.rng.Intn(db.Len())

		batchStart := i * db.contextDim
		storedStart := index * db.contextDim
		copy(contextBatch[batchStart:batchStart+db.contextDim],
			db.contexts[storedStart:storedStart+db.contextDim],
		)
		actionBatch[i] = db.actions[index]
		rewardBatch[i] = db.rewards[index]
	}

	return contextBatch, actionBatch, rewardBatch, nil
}

// Len returns the number of transitions currently stored
func (db *DB) Len() int {
	return len(db.actions)
}

// ContextDim returns the number of features in each stored context
func (db *DB) ContextDim() int {
	return db.contextDim
}

// MaxCapacity returns the maximum number of transitions the database
// will store, or 0 if the database is unbounded.
func (db *DB) MaxCapacity() int {
	if db.maxCapacity <= 0 {
		return 0
	}
	return db.maxCapacity
}

// String returns the string representation of the DB
func (db *DB) String() string {
	return fmt.Sprintf("TransitionDB | Size: %v | Context Dim: %v",
		db.Len(), db.contextDim)
}
