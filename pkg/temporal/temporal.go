package temporal

import "errors"

// Temporal is the read-only contract any date or time value exposes to the
// period calculations.
type Temporal interface {
	// Get returns the value of the field, or an error wrapping
	// ErrUnsupportedField if the field has no meaning for this value.
	Get(field Field) (int64, error)
	// Range returns the range of legal values for the field on this value.
	Range(field Field) (ValueRange, error)
	// Chronology identifies the calendar system the value belongs to.
	Chronology() string
}

// Adjustable is a Temporal that supports unit-based arithmetic. It is the
// target of the Period double-dispatch: a Period applies itself to a value by
// calling Plus once per non-zero field.
type Adjustable interface {
	Temporal
	// Plus returns a value of the same kind with the amount of the unit
	// added. Unsupported units fail with an error wrapping ErrUnsupportedUnit.
	Plus(amount int64, unit Unit) (Adjustable, error)
}

// Supported reports whether the value defines the field.
func Supported(t Temporal, field Field) bool {
	if t == nil {
		return false
	}
	_, err := t.Get(field)
	return err == nil
}

// IsUnsupportedField reports whether the error indicates an undefined field.
func IsUnsupportedField(err error) bool {
	return errors.Is(err, ErrUnsupportedField)
}

// IsUnsupportedUnit reports whether the error indicates an unusable unit.
func IsUnsupportedUnit(err error) bool {
	return errors.Is(err, ErrUnsupportedUnit)
}
