// Package errors provides sentinel errors and error types for the chess core
// and its collaborators. It defines common error conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedPosition indicates a structured position that cannot occur
	// in a legal game (wrong king count, pawns on a terminal rank, ...).
	ErrMalformedPosition = errors.New("malformed position")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrCorruptBoard indicates that a board's incremental state no longer
	// matches a recomputation from its squares.
	ErrCorruptBoard = errors.New("corrupt board state")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrReferenceMismatch indicates that move counts disagree with the
	// reference move generator.
	ErrReferenceMismatch = errors.New("reference mismatch")
)

// MalformedPositionError reports why a structured position was rejected.
// Construction that returns it produces no board.
type MalformedPositionError struct {
	Reason string // What is impossible about the position
	Square string // Algebraic square involved (if any)
}

// Error returns the reason, prefixed by the square when one is known.
func (e *MalformedPositionError) Error() string {
	if e.Square != "" {
		return fmt.Sprintf("%v: %s: %s", ErrMalformedPosition, e.Square, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedPosition, e.Reason)
}

// Unwrap returns ErrMalformedPosition so errors.Is() matches the sentinel.
func (e *MalformedPositionError) Unwrap() error {
	return ErrMalformedPosition
}

// Malformed builds a MalformedPositionError with a formatted reason.
func Malformed(square string, format string, args ...interface{}) *MalformedPositionError {
	return &MalformedPositionError{
		Reason: fmt.Sprintf(format, args...),
		Square: square,
	}
}

// ParseError represents a notation error with field context.
// It's used for FEN and move-text parsing errors.
type ParseError struct {
	Err   error  // The underlying error
	Input string // The text being parsed
	Field string // Which field was being parsed (e.g. "castling")
	Got   string // What was found instead
}

// Error returns a formatted error message with field and input context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.Input))
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
