package allocation

import "fmt"

// The allocators report three kinds of recoverable failure. Validation means
// the staff member's input is wrong and can be fixed; allocation means every
// seating option was exhausted; persistence means the store rejected part of
// an applied plan. None of them are fatal to the process.

// ValidationError rejects a request before any search or persistence runs.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AllocationError reports that the seat search exhausted all options. No
// partial state has been written when this is returned.
type AllocationError struct {
	Reason string
}

func (e *AllocationError) Error() string {
	return "allocation failed: " + e.Reason
}

// PersistenceError reports a partially-failed batch of passenger updates.
// Members updated before the failure are reverted by a compensating pass;
// RolledBack is false only if that pass itself hit errors, in which case the
// store is left inconsistent and the failure needs manual attention.
type PersistenceError struct {
	Succeeded  int
	Total      int
	RolledBack bool
	Causes     []error
}

func (e *PersistenceError) Error() string {
	state := "rolled back"
	if !e.RolledBack {
		state = "rollback incomplete"
	}
	return fmt.Sprintf("persistence failed: %d/%d passenger updates succeeded (%s)", e.Succeeded, e.Total, state)
}
