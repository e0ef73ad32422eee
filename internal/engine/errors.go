package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownExercise marks a catalog miss. The substitution advisor maps
// it to an empty result since user-entered custom exercises are expected
// to be missing from the catalog.
var ErrUnknownExercise = errors.New("unknown exercise")

// InvalidConfigurationError signals structurally invalid detector config
// supplied by the host. This is a programming error, not a data condition,
// so constructors fail instead of degrading.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration [%s]: %s", e.Field, e.Reason)
}

// AnalysisError wraps any unexpected internal failure of an analysis call.
// The caller decides whether to log, retry with sanitized input, or show a
// fallback state; the engine performs no retries of its own.
type AnalysisError struct {
	Op  string
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed in %s: %s", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
