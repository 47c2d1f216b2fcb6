// Package errors provides sentinel errors and custom error types for the stagelist application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrOutOfBounds indicates that a position is not addressable in the working list
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidScript indicates that a batch script line could not be parsed
	ErrInvalidScript = errors.New("invalid script")

	// ErrInteractiveDisabled indicates that an interactive prompt was requested without a terminal
	ErrInteractiveDisabled = errors.New("interactive mode is disabled")
)

// OutOfBoundsError represents an insert or delete at a position the working list cannot address
type OutOfBoundsError struct {
	Op       string
	Position int
	Length   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s failed: position %d out of bounds for list of length %d", e.Op, e.Position, e.Length)
}

// Is returns true if the target error is ErrOutOfBounds
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// NewOutOfBoundsError creates a new OutOfBoundsError
func NewOutOfBoundsError(op string, position, length int) *OutOfBoundsError {
	return &OutOfBoundsError{
		Op:       op,
		Position: position,
		Length:   length,
	}
}

// ScriptError represents a batch script line that could not be parsed
type ScriptError struct {
	Line    int
	Text    string
	Message string
	Err     error
}

func (e *ScriptError) Error() string {
	msg := fmt.Sprintf("line %d: %s", e.Line, e.Message)
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrInvalidScript
func (e *ScriptError) Is(target error) bool {
	return target == ErrInvalidScript
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// NewScriptError creates a new ScriptError
func NewScriptError(line int, text, message string, err error) *ScriptError {
	return &ScriptError{
		Line:    line,
		Text:    text,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's tree matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
