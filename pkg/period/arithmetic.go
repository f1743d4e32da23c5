package period

import (
	"math"

	"github.com/dmitrymomot/chronokit/pkg/safemath"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

// Plus adds another period field-wise: years to years, months to months, days
// to days and the time components together. There is no normalization between
// fields: eleven months plus one month is twelve months, not one year.
func (p Period) Plus(other Period) (Period, error) {
	years, err := safemath.AddInt32(p.years, other.years)
	if err != nil {
		return Zero, err
	}
	months, err := safemath.AddInt32(p.months, other.months)
	if err != nil {
		return Zero, err
	}
	days, err := safemath.AddInt32(p.days, other.days)
	if err != nil {
		return Zero, err
	}
	nanos, err := safemath.AddInt64(p.nanos, other.nanos)
	if err != nil {
		return Zero, err
	}
	return create(years, months, days, nanos), nil
}

// Minus subtracts another period field-wise, with the same no-normalization
// rule as Plus.
func (p Period) Minus(other Period) (Period, error) {
	years, err := safemath.SubtractInt32(p.years, other.years)
	if err != nil {
		return Zero, err
	}
	months, err := safemath.SubtractInt32(p.months, other.months)
	if err != nil {
		return Zero, err
	}
	days, err := safemath.SubtractInt32(p.days, other.days)
	if err != nil {
		return Zero, err
	}
	nanos, err := safemath.SubtractInt64(p.nanos, other.nanos)
	if err != nil {
		return Zero, err
	}
	return create(years, months, days, nanos), nil
}

// PlusUnit adds an amount of a single unit. The unit must be years, months,
// days, or a time unit with an exact duration; anything else fails with
// temporal.ErrUnsupportedUnit. Adding zero returns the receiver unchanged.
func (p Period) PlusUnit(amount int64, unit temporal.Unit) (Period, error) {
	switch unit {
	case temporal.UnitYears, temporal.UnitMonths, temporal.UnitDays:
	default:
		if unit.IsDurationEstimated() {
			return Zero, &temporal.UnsupportedUnitError{Unit: unit}
		}
	}
	if amount == 0 {
		return p, nil
	}
	switch unit {
	case temporal.UnitNanos:
		return p.PlusNanos(amount)
	case temporal.UnitMicros:
		scaled, err := safemath.MultiplyInt64(amount, 1_000)
		if err != nil {
			return Zero, err
		}
		return p.PlusNanos(scaled)
	case temporal.UnitMillis:
		scaled, err := safemath.MultiplyInt64(amount, 1_000_000)
		if err != nil {
			return Zero, err
		}
		return p.PlusNanos(scaled)
	case temporal.UnitSeconds:
		return p.PlusSeconds(amount)
	case temporal.UnitMinutes:
		return p.PlusMinutes(amount)
	case temporal.UnitHours:
		return p.PlusHours(amount)
	case temporal.UnitHalfDays:
		scaled, err := safemath.MultiplyInt64(amount, 12*safemath.NanosPerHour)
		if err != nil {
			return Zero, err
		}
		return p.PlusNanos(scaled)
	case temporal.UnitDays:
		return p.PlusDays(amount)
	case temporal.UnitMonths:
		return p.PlusMonths(amount)
	case temporal.UnitYears:
		return p.PlusYears(amount)
	default:
		return Zero, &temporal.UnsupportedUnitError{Unit: unit}
	}
}

// MinusUnit subtracts an amount of a single unit, with the same unit rules as
// PlusUnit.
func (p Period) MinusUnit(amount int64, unit temporal.Unit) (Period, error) {
	if amount == math.MinInt64 {
		// -MinInt64 is not representable; add MaxInt64 then 1 instead.
		q, err := p.PlusUnit(math.MaxInt64, unit)
		if err != nil {
			return Zero, err
		}
		return q.PlusUnit(1, unit)
	}
	return p.PlusUnit(-amount, unit)
}

// PlusYears adds to the years field only.
func (p Period) PlusYears(amount int64) (Period, error) {
	sum, err := safemath.AddInt64(int64(p.years), amount)
	if err != nil {
		return Zero, err
	}
	years, err := safemath.ToInt32(sum)
	if err != nil {
		return Zero, err
	}
	return create(years, p.months, p.days, p.nanos), nil
}

// PlusMonths adds to the months field only; no carry into years.
func (p Period) PlusMonths(amount int64) (Period, error) {
	sum, err := safemath.AddInt64(int64(p.months), amount)
	if err != nil {
		return Zero, err
	}
	months, err := safemath.ToInt32(sum)
	if err != nil {
		return Zero, err
	}
	return create(p.years, months, p.days, p.nanos), nil
}

// PlusDays adds to the days field only.
func (p Period) PlusDays(amount int64) (Period, error) {
	sum, err := safemath.AddInt64(int64(p.days), amount)
	if err != nil {
		return Zero, err
	}
	days, err := safemath.ToInt32(sum)
	if err != nil {
		return Zero, err
	}
	return create(p.years, p.months, days, p.nanos), nil
}

// PlusHours adds whole hours to the normalized time component.
func (p Period) PlusHours(amount int64) (Period, error) {
	scaled, err := safemath.MultiplyInt64(amount, safemath.NanosPerHour)
	if err != nil {
		return Zero, err
	}
	return p.PlusNanos(scaled)
}

// PlusMinutes adds whole minutes to the normalized time component.
func (p Period) PlusMinutes(amount int64) (Period, error) {
	scaled, err := safemath.MultiplyInt64(amount, safemath.NanosPerMinute)
	if err != nil {
		return Zero, err
	}
	return p.PlusNanos(scaled)
}

// PlusSeconds adds whole seconds to the normalized time component.
func (p Period) PlusSeconds(amount int64) (Period, error) {
	scaled, err := safemath.MultiplyInt64(amount, safemath.NanosPerSecond)
	if err != nil {
		return Zero, err
	}
	return p.PlusNanos(scaled)
}

// PlusNanos adds nanoseconds to the normalized time component.
func (p Period) PlusNanos(amount int64) (Period, error) {
	nanos, err := safemath.AddInt64(p.nanos, amount)
	if err != nil {
		return Zero, err
	}
	return create(p.years, p.months, p.days, nanos), nil
}

// MinusYears subtracts from the years field only.
func (p Period) MinusYears(amount int64) (Period, error) {
	if amount == math.MinInt64 {
		q, err := p.PlusYears(math.MaxInt64)
		if err != nil {
			return Zero, err
		}
		return q.PlusYears(1)
	}
	return p.PlusYears(-amount)
}

// MinusMonths subtracts from the months field only.
func (p Period) MinusMonths(amount int64) (Period, error) {
	if amount == math.MinInt64 {
		q, err := p.PlusMonths(math.MaxInt64)
		if err != nil {
			return Zero, err
		}
		return q.PlusMonths(1)
	}
	return p.PlusMonths(-amount)
}

// MinusDays subtracts from the days field only.
func (p Period) MinusDays(amount int64) (Period, error) {
	if amount == math.MinInt64 {
		q, err := p.PlusDays(math.MaxInt64)
		if err != nil {
			return Zero, err
		}
		return q.PlusDays(1)
	}
	return p.PlusDays(-amount)
}

// MinusHours subtracts whole hours from the normalized time component.
func (p Period) MinusHours(amount int64) (Period, error) {
	if amount == math.MinInt64 {
		q, err := p.PlusHours(math.MaxInt64)
		if err != nil {
			return Zero, err
		}
		return q.PlusHours(1)
	}
	return p.PlusHours(-amount)
}

// MinusMinutes subtracts whole minutes from the normalized time component.
func (p Period) MinusMinutes(amount int64) (Period, error) {
	if amount == math.MinInt64 {
		q, err := p.PlusMinutes(math.MaxInt64)
		if err != nil {
			return Zero, err
		}
		return q.PlusMinutes(1)
	}
	return p.PlusMinutes(-amount)
}

// MinusSeconds subtracts whole seconds from the normalized time component.
func (p Period) MinusSeconds(amount int64) (Period, error) {
	if amount == math.MinInt64 {
		q, err := p.PlusSeconds(math.MaxInt64)
		if err != nil {
			return Zero, err
		}
		return q.PlusSeconds(1)
	}
	return p.PlusSeconds(-amount)
}

// MinusNanos subtracts nanoseconds from the normalized time component.
func (p Period) MinusNanos(amount int64) (Period, error) {
	if amount == math.MinInt64 {
		q, err := p.PlusNanos(math.MaxInt64)
		if err != nil {
			return Zero, err
		}
		return q.PlusNanos(1)
	}
	return p.PlusNanos(-amount)
}

// MultipliedBy multiplies every field by the scalar. The receiver is returned
// unchanged when the scalar is one or the period is zero.
func (p Period) MultipliedBy(scalar int32) (Period, error) {
	if p == Zero || scalar == 1 {
		return p, nil
	}
	years, err := safemath.MultiplyInt32(p.years, scalar)
	if err != nil {
		return Zero, err
	}
	months, err := safemath.MultiplyInt32(p.months, scalar)
	if err != nil {
		return Zero, err
	}
	days, err := safemath.MultiplyInt32(p.days, scalar)
	if err != nil {
		return Zero, err
	}
	nanos, err := safemath.MultiplyInt64By(p.nanos, scalar)
	if err != nil {
		return Zero, err
	}
	return create(years, months, days, nanos), nil
}

// Negated returns the period with every field negated.
func (p Period) Negated() (Period, error) {
	return p.MultipliedBy(-1)
}

// NormalizeHoursToDays moves whole 24-hour chunks of the time component into
// the days field: P2DT28H becomes P3DT4H. Only valid where a day is exactly
// 24 hours.
func (p Period) NormalizeHoursToDays() (Period, error) {
	splitDays := int32(p.nanos / safemath.NanosPerDay)
	if splitDays == 0 {
		return p, nil
	}
	remNanos := p.nanos % safemath.NanosPerDay
	days, err := safemath.AddInt32(p.days, splitDays)
	if err != nil {
		return Zero, err
	}
	return create(p.years, p.months, days, remNanos), nil
}

// NormalizeDaysToHours folds the days field into the time component using
// 24-hour days: P2DT4H becomes PT52H. Only valid where a day is exactly 24
// hours.
func (p Period) NormalizeDaysToHours() (Period, error) {
	if p.days == 0 {
		return p, nil
	}
	dayNanos, err := safemath.MultiplyInt64(int64(p.days), safemath.NanosPerDay)
	if err != nil {
		return Zero, err
	}
	nanos, err := safemath.AddInt64(dayNanos, p.nanos)
	if err != nil {
		return Zero, err
	}
	return create(p.years, p.months, 0, nanos), nil
}

// NormalizeMonthsISO folds whole twelve-month chunks of the months field into
// years: P1Y15M becomes P2Y3M. The split truncates toward zero, so the
// remainder keeps the sign of the months field. Only valid for calendars
// with fixed twelve-month years.
func (p Period) NormalizeMonthsISO() (Period, error) {
	splitYears := p.months / 12
	if splitYears == 0 {
		return p, nil
	}
	remMonths := p.months % 12
	years, err := safemath.AddInt32(p.years, splitYears)
	if err != nil {
		return Zero, err
	}
	return create(years, remMonths, p.days, p.nanos), nil
}

// AddTo applies the period to a date-time value by adding each non-zero field
// in the fixed order years, months, days, then time nanoseconds. The order is
// part of the contract: each step sees the clamped result of the one before,
// so adding P1M1D to January 30 lands on March 1 via February 28, and adding
// P1Y1M to a leap day clamps at the year step before the month is added.
func (p Period) AddTo(t temporal.Adjustable) (temporal.Adjustable, error) {
	if t == nil {
		return nil, ErrNilTemporal
	}
	var err error
	if p.years != 0 {
		if t, err = t.Plus(int64(p.years), temporal.UnitYears); err != nil {
			return nil, err
		}
	}
	if p.months != 0 {
		if t, err = t.Plus(int64(p.months), temporal.UnitMonths); err != nil {
			return nil, err
		}
	}
	if p.days != 0 {
		if t, err = t.Plus(int64(p.days), temporal.UnitDays); err != nil {
			return nil, err
		}
	}
	if p.nanos != 0 {
		if t, err = t.Plus(p.nanos, temporal.UnitNanos); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SubtractFrom applies the negation of the period to a date-time value, field
// by field in the same fixed order as AddTo.
func (p Period) SubtractFrom(t temporal.Adjustable) (temporal.Adjustable, error) {
	if t == nil {
		return nil, ErrNilTemporal
	}
	var err error
	if p.years != 0 {
		if t, err = t.Plus(-int64(p.years), temporal.UnitYears); err != nil {
			return nil, err
		}
	}
	if p.months != 0 {
		if t, err = t.Plus(-int64(p.months), temporal.UnitMonths); err != nil {
			return nil, err
		}
	}
	if p.days != 0 {
		if t, err = t.Plus(-int64(p.days), temporal.UnitDays); err != nil {
			return nil, err
		}
	}
	if p.nanos != 0 {
		if t, err = subtractNanos(t, p.nanos); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// subtractNanos handles the one field whose negation can overflow.
func subtractNanos(t temporal.Adjustable, nanos int64) (temporal.Adjustable, error) {
	if nanos == math.MinInt64 {
		t, err := t.Plus(math.MaxInt64, temporal.UnitNanos)
		if err != nil {
			return nil, err
		}
		return t.Plus(1, temporal.UnitNanos)
	}
	return t.Plus(-nanos, temporal.UnitNanos)
}
