package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
)

var (
	ErrUnknownCity      = errors.New("unknown city")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidBirthYear = errors.New("invalid birth year")
	ErrInvalidStation   = errors.New("invalid station data")
)

// ParseError is returned when a source file cannot be read or has a malformed value.
// Line is 0 when the error is not related to a specific line of the file
type ParseError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (pe *ParseError) Error() string {
	if pe.Line == 0 {
		return fmt.Sprintf("error parsing %s: %s", pe.Source, pe.Err)
	}
	if pe.Column == "" {
		return fmt.Sprintf("error parsing %s, line %v: %s", pe.Source, pe.Line, pe.Err)
	}
	return fmt.Sprintf("error parsing %s, line %v, column %q: %s", pe.Source, pe.Line, pe.Column, pe.Err)
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// newReadError wraps an error returned by a csv.Reader, keeping the line it refers to
func newReadError(source string, err error) *ParseError {
	parseErr := &ParseError{Source: source, Err: err}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		parseErr.Line = csvErr.Line
	}
	return parseErr
}
