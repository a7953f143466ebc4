// Package errors provides sentinel errors and error types for the FEN codec.
// It defines common error conditions and a structured parse error that
// preserves input context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCharacter indicates a byte in a piece placement field
	// that is not a piece letter, a digit 1-8, or a rank separator.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidBoardLength indicates a placement that does not describe
	// exactly 64 squares, or a cell slice of the wrong length.
	ErrInvalidBoardLength = errors.New("invalid board length")

	// ErrInvalidFEN indicates a malformed FEN record outside the piece
	// placement field.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// ParseError wraps a conversion error with input context: the string being
// parsed, the byte offset of the failure, and the offending text. It
// implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The input being parsed
	Offset int    // Byte offset of the failure (-1 if not applicable)
	Got    string // The offending text (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Offset >= 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	if context != "" {
		return context
	}
	return "parse error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ParseError wrapper.
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
