package period

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTemporal indicates a nil date-time value where one was required.
	ErrNilTemporal = errors.New("temporal value is nil")
	// ErrChronologyMismatch indicates a between calculation over values from
	// different calendar systems.
	ErrChronologyMismatch = errors.New("chronology mismatch")
	// ErrNoValidFields indicates a between calculation over values that
	// support none of the probed fields.
	ErrNoValidFields = errors.New("no valid fields to calculate between")
	// ErrCalendarUnits indicates a duration conversion on a period whose
	// years, months or days are non-zero.
	ErrCalendarUnits = errors.New("period contains calendar units")
)

// CalendarUnitsError reports the period that could not be converted to an
// exact duration. It matches ErrCalendarUnits via errors.Is.
type CalendarUnitsError struct {
	Period Period
}

func (e *CalendarUnitsError) Error() string {
	return fmt.Sprintf("cannot convert period %s to duration: years, months or days present", e.Period)
}

func (e *CalendarUnitsError) Unwrap() error {
	return ErrCalendarUnits
}

// ParseError reports malformed period text together with the byte offset at
// which parsing failed.
type ParseError struct {
	Input   string
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse period %q at offset %d: %s", e.Input, e.Offset, e.Message)
}

func newParseError(input string, offset int, message string) *ParseError {
	return &ParseError{Input: input, Offset: offset, Message: message}
}
