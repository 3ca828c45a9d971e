// Package affinity structured error types for better error handling
package affinity

import (
	"fmt"
)

// ErrorKind represents categories of errors
type ErrorKind int

const (
	// Shape errors: input is not an N×2 point set
	KindShape ErrorKind = iota
	// Invalid argument errors
	KindInvalidArg
	// Execution errors
	KindExecution
	// Device errors
	KindDevice
)

// Error represents a structured error with context
type Error struct {
	Kind    ErrorKind
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("affinity %s error in %s: %s (caused by: %v)",
			e.Kind.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("affinity %s error in %s: %s",
		e.Kind.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error kind as a string
func (k ErrorKind) String() string {
	switch k {
	case KindShape:
		return "Shape"
	case KindInvalidArg:
		return "InvalidArgument"
	case KindExecution:
		return "Execution"
	case KindDevice:
		return "Device"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewShapeError creates a shape error for malformed point sets
func NewShapeError(op string, message string) error {
	return &Error{
		Kind:    KindShape,
		Op:      op,
		Message: message,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Kind:    KindInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewExecutionError creates an execution error
func NewExecutionError(op string, message string, err error) error {
	return &Error{
		Kind:    KindExecution,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewDeviceError creates a device error
func NewDeviceError(op string, message string) error {
	return &Error{
		Kind:    KindDevice,
		Op:      op,
		Message: message,
	}
}

// Common pre-defined errors

var (
	// ErrNilPoints indicates a nil point set was passed to a computation
	ErrNilPoints = NewInvalidArgError("Affinity", "nil point set")

	// ErrNegativeCount indicates a negative point count
	ErrNegativeCount = NewInvalidArgError("NewPoints", "point count must be non-negative")

	// ErrInvalidBackend indicates an unknown backend selector
	ErrInvalidBackend = NewDeviceError("NewDevice", "unknown backend")
)

// IsShapeError checks if an error is a shape error
func IsShapeError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == KindShape
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == KindInvalidArg
	}
	return false
}
