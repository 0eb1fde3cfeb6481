// Package domain defines core types, interfaces, and errors for the commerce lake.
package domain

import "fmt"

// NotFoundError indicates a requested partition (or resource) is absent.
// Analytics callers treat it as "zero data"; multi-type enrichment skips
// the missing type and continues.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid external input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ComputationError indicates an unexpected failure inside a deriver or
// rollup, such as a column holding an unusable value type. It is logged at
// the orchestration boundary and returned to the caller, never swallowed.
type ComputationError struct {
	Message string
}

func (e *ComputationError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrComputation creates a ComputationError with a formatted message.
func ErrComputation(format string, args ...interface{}) *ComputationError {
	return &ComputationError{Message: fmt.Sprintf(format, args...)}
}
