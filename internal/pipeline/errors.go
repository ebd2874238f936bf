package pipeline

import "fmt"

// DataAccessError reports a failed read from the store
type DataAccessError struct {
	Op    string
	Cause error
}

func (e *DataAccessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data access error: %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("data access error: %s", e.Op)
}

func (e *DataAccessError) Unwrap() error {
	return e.Cause
}

// UnknownJobDescriptionError reports a job description key missing from the configuration
type UnknownJobDescriptionError struct {
	Key string
}

func (e *UnknownJobDescriptionError) Error() string {
	return fmt.Sprintf("unknown job description %q", e.Key)
}
