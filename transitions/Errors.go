package transitions

import "errors"

// DBError implements errors unique to a transition database.
type DBError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *DBError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

var errEmptyDB error = errors.New("transition database empty")

// IsEmptyDB returns whether or not an error reports that a transition
// database holds no transitions. Training on an empty database is a
// no-op, so callers generally treat this error as a signal to skip
// the training round rather than fail.
func IsEmptyDB(err error) bool {
	if dbErr, ok := err.(*DBError); ok {
		err = dbErr.Err
	}
	return err == errEmptyDB
}
