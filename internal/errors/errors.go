// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidType    = errors.New("invalid option type")
	ErrSingularSystem = errors.New("singular sensitivity system")
	ErrConfigInvalid  = errors.New("invalid configuration")
)

// InvalidInputError reports a pricing parameter that violates its
// constraint. Validation is eager: the error is raised before any
// computation runs.
type InvalidInputError struct {
	Field      string
	Value      float64
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s (%g): %s", e.Field, e.Value, e.Constraint)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(field string, value float64, constraint string) *InvalidInputError {
	return &InvalidInputError{
		Field:      field,
		Value:      value,
		Constraint: constraint,
	}
}

// InvalidOptionTypeError reports an unrecognized option-right or
// barrier-direction/action token.
type InvalidOptionTypeError struct {
	Kind  string // "right", "direction", "action"
	Token string
}

func (e *InvalidOptionTypeError) Error() string {
	return fmt.Sprintf("invalid option type: unrecognized %s %q", e.Kind, e.Token)
}

func (e *InvalidOptionTypeError) Unwrap() error {
	return ErrInvalidType
}

// NewInvalidOptionTypeError creates a new InvalidOptionTypeError.
func NewInvalidOptionTypeError(kind, token string) *InvalidOptionTypeError {
	return &InvalidOptionTypeError{
		Kind:  kind,
		Token: token,
	}
}

// SingularSystemError reports that the 3x3 Vega/Vanna/Volga matching
// system had no solution, typically because of degenerate pivot strikes.
type SingularSystemError struct {
	PutStrike  float64
	ATMStrike  float64
	CallStrike float64
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("singular sensitivity system: pivot strikes %g/%g/%g do not span vega/vanna/volga",
		e.PutStrike, e.ATMStrike, e.CallStrike)
}

func (e *SingularSystemError) Unwrap() error {
	return ErrSingularSystem
}

// NewSingularSystemError creates a new SingularSystemError.
func NewSingularSystemError(putStrike, atmStrike, callStrike float64) *SingularSystemError {
	return &SingularSystemError{
		PutStrike:  putStrike,
		ATMStrike:  atmStrike,
		CallStrike: callStrike,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
