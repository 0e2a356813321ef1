package ordsort

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned, wrapped, when a sort is called with an absent
// sequence or comparison rule. No work is done and no instrumentation is
// changed when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a precondition violation on a sort call
type ArgumentError struct {
	// Arg is the name of the offending argument
	Arg string
	// Reason explains why the value is invalid
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewArgumentError creates an ArgumentError
func NewArgumentError(arg, reason string) error {
	return &ArgumentError{Arg: arg, Reason: reason}
}

// ComparisonError represents a panic raised by a comparison rule. It is only
// produced when Config.RecoverComparisonPanics is set; otherwise the panic
// propagates to the caller unchanged.
type ComparisonError struct {
	// Cause is the original panic value raised by the rule
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}
