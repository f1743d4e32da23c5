package chrono

import (
	"fmt"

	"github.com/dmitrymomot/chronokit/pkg/safemath"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

// LocalTime is a time-of-day with nanosecond precision, stored as a single
// nano-of-day count. The zero value is midnight.
type LocalTime struct {
	nanoOfDay int64
}

// NewLocalTime creates a time-of-day, validating each component.
func NewLocalTime(hour, minute, second int32, nano int64) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidTime, hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, fmt.Errorf("%w: minute %d out of range", ErrInvalidTime, minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, fmt.Errorf("%w: second %d out of range", ErrInvalidTime, second)
	}
	if nano < 0 || nano >= safemath.NanosPerSecond {
		return LocalTime{}, fmt.Errorf("%w: nano %d out of range", ErrInvalidTime, nano)
	}
	nod := int64(hour)*safemath.NanosPerHour +
		int64(minute)*safemath.NanosPerMinute +
		int64(second)*safemath.NanosPerSecond +
		nano
	return LocalTime{nanoOfDay: nod}, nil
}

// MustLocalTime is NewLocalTime that panics on invalid input. Intended for
// constants and tests.
func MustLocalTime(hour, minute, second int32, nano int64) LocalTime {
	t, err := NewLocalTime(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// NanoOfDay returns the nanosecond within the day, 0 to 86,399,999,999,999.
func (t LocalTime) NanoOfDay() int64 {
	return t.nanoOfDay
}

// Hour returns the hour-of-day, 0 to 23.
func (t LocalTime) Hour() int32 {
	return int32(t.nanoOfDay / safemath.NanosPerHour)
}

// Minute returns the minute-of-hour, 0 to 59.
func (t LocalTime) Minute() int32 {
	return int32(t.nanoOfDay/safemath.NanosPerMinute) % 60
}

// Second returns the second-of-minute, 0 to 59.
func (t LocalTime) Second() int32 {
	return int32(t.nanoOfDay/safemath.NanosPerSecond) % 60
}

// Nano returns the nanosecond-of-second, 0 to 999,999,999.
func (t LocalTime) Nano() int64 {
	return t.nanoOfDay % safemath.NanosPerSecond
}

// Get implements temporal.Temporal. Only NanoOfDay is defined on a pure time.
func (t LocalTime) Get(field temporal.Field) (int64, error) {
	if field == temporal.FieldNanoOfDay {
		return t.nanoOfDay, nil
	}
	return 0, &temporal.UnsupportedFieldError{Field: field}
}

// Range implements temporal.Temporal.
func (t LocalTime) Range(field temporal.Field) (temporal.ValueRange, error) {
	if field == temporal.FieldNanoOfDay {
		return temporal.NewRange(0, safemath.NanosPerDay-1), nil
	}
	return temporal.ValueRange{}, &temporal.UnsupportedFieldError{Field: field}
}

// Chronology implements temporal.Temporal. Time-of-day follows ISO clock
// rules regardless of the calendar used for dates.
func (t LocalTime) Chronology() string {
	return ChronologyISO
}

// Plus implements temporal.Adjustable for the exact time units. The result
// wraps around midnight.
func (t LocalTime) Plus(amount int64, unit temporal.Unit) (temporal.Adjustable, error) {
	var scale int64
	switch unit {
	case temporal.UnitNanos:
		scale = 1
	case temporal.UnitMicros:
		scale = 1_000
	case temporal.UnitMillis:
		scale = 1_000_000
	case temporal.UnitSeconds:
		scale = safemath.NanosPerSecond
	case temporal.UnitMinutes:
		scale = safemath.NanosPerMinute
	case temporal.UnitHours:
		scale = safemath.NanosPerHour
	case temporal.UnitHalfDays:
		scale = 12 * safemath.NanosPerHour
	default:
		return nil, &temporal.UnsupportedUnitError{Unit: unit}
	}
	// Reduce the amount before scaling so the multiply cannot overflow.
	span := safemath.FloorMod(amount, safemath.NanosPerDay/scale) * scale
	return LocalTime{nanoOfDay: safemath.FloorMod(t.nanoOfDay+span, safemath.NanosPerDay)}, nil
}

// String returns the time in ISO-8601 form, such as "13:45:30" or
// "13:45:30.123456789" when sub-second precision is present.
func (t LocalTime) String() string {
	if n := t.Nano(); n != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), n)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
