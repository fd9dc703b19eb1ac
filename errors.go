package aoc

import (
	"errors"
	"fmt"
)

// ErrMalformed classifies input that does not follow a day's format.
var ErrMalformed = errors.New("malformed input")

// ParseError reports an input line that could not be parsed.
type ParseError struct {
	Line int    // 1-based, 0 when the failure is not tied to a line
	Text string // offending text, possibly empty
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := "parse"
	if e.Line > 0 {
		base += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Text != "" {
		base += fmt.Sprintf(" %q", e.Text)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LineError returns a *ParseError for the 0-based line index i.
func LineError(i int, text string, err error) error {
	return &ParseError{Line: i + 1, Text: text, Err: err}
}

// Malformedf returns an error wrapping ErrMalformed.
func Malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
