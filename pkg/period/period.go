package period

import (
	"time"

	"github.com/dmitrymomot/chronokit/pkg/safemath"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

// Period is an immutable, directed amount of human-scale time: years, months
// and days, plus a single normalized nanosecond count covering all time units.
//
// Hours, minutes, seconds and sub-second nanoseconds are never stored
// separately; they are derived from the nanosecond total, so the time
// component cannot be double-accounted. The date fields carry no calendar of
// their own: what a "month" means is decided by the date a period is applied
// to.
//
// Periods compare with ==. The zero value is the canonical zero period and
// every zero-producing factory and operation returns it, so p == period.Zero
// is the identity-style zero check.
//
// The maximum representable time component is about 2.5 million hours,
// limited by the int64 nanosecond total.
type Period struct {
	years  int32
	months int32
	days   int32
	nanos  int64
}

// Zero is the period of zero length.
var Zero = Period{}

// create funnels every construction path so that an all-zero result is
// always the canonical Zero.
func create(years, months, days int32, nanos int64) Period {
	if years == 0 && months == 0 && days == 0 && nanos == 0 {
		return Zero
	}
	return Period{years: years, months: months, days: days, nanos: nanos}
}

// New creates a period from date and time fields. The time fields are
// combined into a single normalized nanosecond total, each step
// overflow-checked.
func New(years, months, days, hours, minutes, seconds int32) (Period, error) {
	return NewWithNanos(years, months, days, hours, minutes, seconds, 0)
}

// NewWithNanos creates a period from date and time fields including
// sub-second nanoseconds. The time fields are combined into a single
// normalized nanosecond total, each step overflow-checked.
func NewWithNanos(years, months, days, hours, minutes, seconds int32, nanos int64) (Period, error) {
	if years == 0 && months == 0 && days == 0 && hours == 0 && minutes == 0 && seconds == 0 && nanos == 0 {
		return Zero, nil
	}
	totSecs, err := safemath.AddInt64(int64(hours)*3600+int64(minutes)*60, int64(seconds))
	if err != nil {
		return Zero, err
	}
	secNanos, err := safemath.MultiplyInt64(totSecs, safemath.NanosPerSecond)
	if err != nil {
		return Zero, err
	}
	totNanos, err := safemath.AddInt64(secNanos, nanos)
	if err != nil {
		return Zero, err
	}
	return create(years, months, days, totNanos), nil
}

// OfDate creates a period of years, months and days with a zero time
// component.
func OfDate(years, months, days int32) Period {
	return create(years, months, days, 0)
}

// OfTime creates a time-only period from hours, minutes and seconds.
func OfTime(hours, minutes, seconds int32) (Period, error) {
	return NewWithNanos(0, 0, 0, hours, minutes, seconds, 0)
}

// OfTimeNanos creates a time-only period from hours, minutes, seconds and
// sub-second nanoseconds.
func OfTimeNanos(hours, minutes, seconds int32, nanos int64) (Period, error) {
	return NewWithNanos(0, 0, 0, hours, minutes, seconds, nanos)
}

// Of creates a period of a single unit, such as Of(6, temporal.UnitDays).
// The unit must be years, months, days, or a time unit with an exact
// duration; anything else fails with temporal.ErrUnsupportedUnit.
func Of(amount int64, unit temporal.Unit) (Period, error) {
	return Zero.PlusUnit(amount, unit)
}

// OfDuration converts an exact duration to a time-only period. The years,
// months and days fields are zero; use NormalizeHoursToDays to populate days
// afterwards if a 24-hour day applies.
func OfDuration(d time.Duration) Period {
	return create(0, 0, 0, int64(d))
}

// Years returns the years field.
func (p Period) Years() int32 {
	return p.years
}

// Months returns the months field.
func (p Period) Months() int32 {
	return p.months
}

// Days returns the days field.
func (p Period) Days() int32 {
	return p.days
}

// Hours returns the hours derived from the normalized time component.
// Division truncates toward zero, matching the sign of the total.
func (p Period) Hours() int32 {
	return int32(p.nanos / safemath.NanosPerHour)
}

// Minutes returns the minutes within the hour derived from the normalized
// time component.
func (p Period) Minutes() int32 {
	return int32(p.nanos/safemath.NanosPerMinute) % 60
}

// Seconds returns the seconds within the minute derived from the normalized
// time component.
func (p Period) Seconds() int32 {
	return int32(p.nanos/safemath.NanosPerSecond) % 60
}

// NanosWithinSecond returns the sub-second nanoseconds derived from the
// normalized time component.
func (p Period) NanosWithinSecond() int64 {
	return p.nanos % safemath.NanosPerSecond
}

// TimeNanos returns the raw normalized time component in nanoseconds.
func (p Period) TimeNanos() int64 {
	return p.nanos
}

// IsZero reports whether the period is the canonical zero.
func (p Period) IsZero() bool {
	return p == Zero
}

// IsPositive reports whether every field is non-negative and at least one is
// positive. A period mixing positive and negative fields is not positive.
func (p Period) IsPositive() bool {
	if p.years < 0 || p.months < 0 || p.days < 0 || p.nanos < 0 {
		return false
	}
	return p != Zero
}

// WithYears returns a copy with the years field replaced. The receiver is
// returned unchanged when the value is the same.
func (p Period) WithYears(years int32) Period {
	if years == p.years {
		return p
	}
	return create(years, p.months, p.days, p.nanos)
}

// WithMonths returns a copy with the months field replaced. The receiver is
// returned unchanged when the value is the same.
func (p Period) WithMonths(months int32) Period {
	if months == p.months {
		return p
	}
	return create(p.years, months, p.days, p.nanos)
}

// WithDays returns a copy with the days field replaced. The receiver is
// returned unchanged when the value is the same.
func (p Period) WithDays(days int32) Period {
	if days == p.days {
		return p
	}
	return create(p.years, p.months, days, p.nanos)
}

// WithTimeNanos returns a copy with the whole normalized time component
// replaced. The receiver is returned unchanged when the value is the same.
func (p Period) WithTimeNanos(nanos int64) Period {
	if nanos == p.nanos {
		return p
	}
	return create(p.years, p.months, p.days, nanos)
}

// DateOnly returns the period with the time component zeroed. No
// normalization occurs; P1Y3MT12H becomes P1Y3M.
func (p Period) DateOnly() Period {
	if p.nanos == 0 {
		return p
	}
	return create(p.years, p.months, p.days, 0)
}

// TimeOnly returns the period with years, months and days zeroed. No
// normalization occurs; P1Y3MT12H becomes PT12H.
func (p Period) TimeOnly() Period {
	if p.years == 0 && p.months == 0 && p.days == 0 {
		return p
	}
	return create(0, 0, 0, p.nanos)
}

// ToDuration converts the period to an exact duration. Years, months and
// days have no exact duration without a reference date, so any non-zero
// calendar field fails with ErrCalendarUnits. See TimeOnly and
// NormalizeDaysToHours for ways to remove calendar fields first.
func (p Period) ToDuration() (time.Duration, error) {
	if p.years != 0 || p.months != 0 || p.days != 0 {
		return 0, &CalendarUnitsError{Period: p}
	}
	return time.Duration(p.nanos), nil
}
