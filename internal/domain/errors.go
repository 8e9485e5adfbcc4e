package domain

import "fmt"

// MissingParameterError reports a required request field that was absent.
// Raised before any side effect, so these never reach the run ledger.
type MissingParameterError struct {
	Field   string
	Message string
}

func (e *MissingParameterError) Error() string { return e.Message }

// NotFoundError reports a client-correctable lookup miss (warehouse absent,
// no pending orders for the selected date and warehouse).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// SolverFailedError reports a solver subprocess that terminated with a
// non-zero exit status. Stderr carries the captured diagnostic text.
type SolverFailedError struct {
	ExitCode int
	Stderr   string
}

func (e *SolverFailedError) Error() string {
	return fmt.Sprintf("solver exited with code %d: %s", e.ExitCode, e.Stderr)
}

// SolverOutputInvalidError reports solver output that exited cleanly but
// violated the contract: unparsable stdout, or loads breaching vehicle
// capacity.
type SolverOutputInvalidError struct {
	Message string
	Err     error
}

func (e *SolverOutputInvalidError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SolverOutputInvalidError) Unwrap() error { return e.Err }

// DataIntegrityError reports a storage row whose numeric fields could not be
// read as numbers. Raised at scan time so NaN never reaches a capacity
// comparison.
type DataIntegrityError struct {
	Entity string
	Err    error
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: %s row: %v", e.Entity, e.Err)
}

func (e *DataIntegrityError) Unwrap() error { return e.Err }
