package temporal

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedField indicates a field with no meaning for a value,
	// such as NanoOfDay on a pure date.
	ErrUnsupportedField = errors.New("unsupported field")
	// ErrUnsupportedUnit indicates a unit that a value or period cannot use,
	// either because it has no fixed relationship to the stored fields or
	// because its duration is estimated.
	ErrUnsupportedUnit = errors.New("unsupported unit")
)

// UnsupportedFieldError reports which field was requested on a value that
// does not define it. It matches ErrUnsupportedField via errors.Is.
type UnsupportedFieldError struct {
	Field Field
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("unsupported field: %s", e.Field)
}

func (e *UnsupportedFieldError) Unwrap() error {
	return ErrUnsupportedField
}

// UnsupportedUnitError reports which unit was rejected. It matches
// ErrUnsupportedUnit via errors.Is.
type UnsupportedUnitError struct {
	Unit Unit
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit: %s", e.Unit)
}

func (e *UnsupportedUnitError) Unwrap() error {
	return ErrUnsupportedUnit
}
