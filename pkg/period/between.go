package period

import (
	"fmt"

	"github.com/dmitrymomot/chronokit/pkg/chrono"
	"github.com/dmitrymomot/chronokit/pkg/safemath"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

// Between computes the period between two temporals by probing the year,
// month-of-year, day-of-month and nano-of-day fields. A field the start does
// not support is skipped; for each field the start does support, the end must
// supply a value too, and its unsupported-field error propagates. A
// chronology mismatch fails the calculation. Differences are taken field by
// field without borrowing, so the result can mix signs. When the month field
// has a fixed range, whole years are carried out of the month difference with
// a truncating split.
func Between(start, end temporal.Temporal) (Period, error) {
	if start == nil || end == nil {
		return Zero, ErrNilTemporal
	}
	if start.Chronology() != end.Chronology() {
		return Zero, fmt.Errorf("%w: %q vs %q", ErrChronologyMismatch, start.Chronology(), end.Chronology())
	}

	var years, months, days int32
	var nanos int64
	found := false

	probe := func(field temporal.Field, assign func(int64) error) error {
		if !temporal.Supported(start, field) {
			return nil
		}
		startVal, err := start.Get(field)
		if err != nil {
			return err
		}
		endVal, err := end.Get(field)
		if err != nil {
			return err
		}
		diff, err := safemath.SubtractInt64(endVal, startVal)
		if err != nil {
			return err
		}
		found = true
		return assign(diff)
	}

	toInt32 := func(target *int32) func(int64) error {
		return func(diff int64) error {
			v, err := safemath.ToInt32(diff)
			if err != nil {
				return err
			}
			*target = v
			return nil
		}
	}

	if err := probe(temporal.FieldYear, toInt32(&years)); err != nil {
		return Zero, err
	}
	if err := probe(temporal.FieldMonthOfYear, toInt32(&months)); err != nil {
		return Zero, err
	}
	if err := probe(temporal.FieldDayOfMonth, toInt32(&days)); err != nil {
		return Zero, err
	}
	if err := probe(temporal.FieldNanoOfDay, func(diff int64) error {
		nanos = diff
		return nil
	}); err != nil {
		return Zero, err
	}
	if !found {
		return Zero, ErrNoValidFields
	}

	// Carry surplus months into years when both values agree on a fixed
	// number of months per year.
	if months != 0 && temporal.Supported(start, temporal.FieldYear) &&
		temporal.Supported(start, temporal.FieldMonthOfYear) {
		monthRange, err := start.Range(temporal.FieldMonthOfYear)
		endRange, endErr := end.Range(temporal.FieldMonthOfYear)
		if err == nil && endErr == nil && monthRange == endRange &&
			monthRange.IsFixed() && monthRange.IsIntValue() {
			monthsPerYear := int32(monthRange.Max() - monthRange.Min() + 1)
			total, err := safemath.AddInt64(int64(years)*int64(monthsPerYear), int64(months))
			if err != nil {
				return Zero, err
			}
			years, err = safemath.ToInt32(total / int64(monthsPerYear))
			if err != nil {
				return Zero, err
			}
			months = int32(total % int64(monthsPerYear))
		}
	}

	return create(years, months, days, nanos), nil
}

// BetweenDates computes the period between two ISO dates as years, months and
// days, each part positive when end is after start and negative otherwise.
// The calculation takes whole months first and leaves the day remainder, so
// 2012-02-29 to 2014-02-28 is one year, eleven months and thirty days rather
// than two years.
func BetweenDates(start, end chrono.LocalDate) (Period, error) {
	totalMonths := end.EpochMonth() - start.EpochMonth()
	days := end.Day() - start.Day()
	switch {
	case totalMonths > 0 && days < 0:
		totalMonths--
		calc, err := start.PlusMonths(totalMonths)
		if err != nil {
			return Zero, err
		}
		days = int32(end.EpochDay() - calc.EpochDay())
	case totalMonths < 0 && days > 0:
		totalMonths++
		days -= end.LengthOfMonth()
	}
	years, err := safemath.ToInt32(totalMonths / 12)
	if err != nil {
		return Zero, err
	}
	months := int32(totalMonths % 12)
	return create(years, months, days, 0), nil
}

// BetweenTimes computes the time-only period between two times of day. The
// result is negative when end is before start.
func BetweenTimes(start, end chrono.LocalTime) Period {
	return create(0, 0, 0, end.NanoOfDay()-start.NanoOfDay())
}
