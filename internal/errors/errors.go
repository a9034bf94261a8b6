// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidBoard indicates a malformed position string.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidMove indicates an empty start square or a violated destination rule.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidRemoval indicates a piece placed on an occupied or off-board square.
	ErrInvalidRemoval = errors.New("invalid removal")

	// ErrInvariant indicates internal state that can only be reached through a bug.
	// Callers must not continue with a board that produced it.
	ErrInvariant = errors.New("internal invariant violated")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError describes a failed relocation between two squares.
// Start and End are rendered by the caller-supplied names (e.g. "e2"), so this
// package does not depend on the board representation.
type MoveError struct {
	Err    error  // The underlying error
	Start  string // Start square name
	End    string // End square name
	Reason string // Human readable reason
}

// Error returns a formatted error message including the squares involved.
func (e *MoveError) Error() string {
	var parts []string
	if e.Start != "" || e.End != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.Start, e.End))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// RemovalError describes a failed placement on a single square.
type RemovalError struct {
	Err    error
	Square string
	Reason string
}

// Error returns a formatted error message.
func (e *RemovalError) Error() string {
	msg := e.Reason
	if e.Square != "" {
		msg = fmt.Sprintf("%s: %s", e.Square, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %s", e.Err, msg)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *RemovalError) Unwrap() error {
	return e.Err
}

// ParseError represents a position parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	Offset   int    // 0-based character offset in the input (-1 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Offset >= 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Invariantf builds an ErrInvariant error with formatted detail.
func Invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariant)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
