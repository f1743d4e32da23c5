package chrono

import (
	"fmt"

	"github.com/dmitrymomot/chronokit/pkg/safemath"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

// ChronologyISO identifies the proleptic Gregorian calendar.
const ChronologyISO = "ISO"

const (
	// MinYear is the minimum supported proleptic ISO year.
	MinYear = -999_999_999
	// MaxYear is the maximum supported proleptic ISO year.
	MaxYear = 999_999_999
)

// Epoch-day bounds implied by the year range.
var (
	minEpochDay = mustEpochDay(MinYear, 1, 1)
	maxEpochDay = mustEpochDay(MaxYear, 12, 31)
)

// LocalDate is a date in the proleptic ISO calendar, without a time-of-day or
// timezone. The zero value is not a valid date; construct through
// NewLocalDate or FromEpochDay.
type LocalDate struct {
	year  int32
	month int8
	day   int8
}

// NewLocalDate creates a date, validating the year range, month and
// day-of-month (including leap-year February).
func NewLocalDate(year, month, day int32) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return LocalDate{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > lengthOfMonth(int64(year), month) {
		return LocalDate{}, fmt.Errorf("%w: day %d out of range for %d-%02d", ErrInvalidDate, day, year, month)
	}
	return LocalDate{year: year, month: int8(month), day: int8(day)}, nil
}

// MustLocalDate is NewLocalDate that panics on invalid input. Intended for
// constants and tests.
func MustLocalDate(year, month, day int32) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromEpochDay creates the date for a count of days since 1970-01-01.
func FromEpochDay(epochDay int64) (LocalDate, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return LocalDate{}, fmt.Errorf("%w: epoch day %d out of range", ErrInvalidDate, epochDay)
	}
	y, m, d := civilFromDays(epochDay)
	return LocalDate{year: int32(y), month: int8(m), day: int8(d)}, nil
}

// Year returns the proleptic ISO year.
func (d LocalDate) Year() int32 {
	return d.year
}

// Month returns the month-of-year, 1 to 12.
func (d LocalDate) Month() int32 {
	return int32(d.month)
}

// Day returns the day-of-month, 1 to 31.
func (d LocalDate) Day() int32 {
	return int32(d.day)
}

// EpochDay returns the count of days since 1970-01-01; earlier dates are
// negative.
func (d LocalDate) EpochDay() int64 {
	return daysFromCivil(int64(d.year), int32(d.month), int32(d.day))
}

// EpochMonth returns the count of months since January 1970.
func (d LocalDate) EpochMonth() int64 {
	return (int64(d.year)-1970)*12 + int64(d.month) - 1
}

// LengthOfMonth returns the number of days in the date's month.
func (d LocalDate) LengthOfMonth() int32 {
	return lengthOfMonth(int64(d.year), int32(d.month))
}

// IsLeapYear reports whether the date's year is an ISO leap year.
func (d LocalDate) IsLeapYear() bool {
	return safemath.IsLeapYear(int64(d.year))
}

// PlusDays returns the date the given number of days later, negative for
// earlier.
func (d LocalDate) PlusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := safemath.AddInt64(d.EpochDay(), days)
	if err != nil {
		return LocalDate{}, err
	}
	return FromEpochDay(ed)
}

// PlusMonths returns the date the given number of months later, with the
// day-of-month clamped to the last valid day of the resulting month.
// January 31 plus one month is February 28 (or 29 in a leap year).
func (d LocalDate) PlusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}
	monthCount := int64(d.year)*12 + int64(d.month) - 1
	calc, err := safemath.AddInt64(monthCount, months)
	if err != nil {
		return LocalDate{}, err
	}
	newYear := safemath.FloorDiv(calc, 12)
	newMonth := int32(safemath.FloorMod(calc, 12)) + 1
	if newYear < MinYear || newYear > MaxYear {
		return LocalDate{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, newYear)
	}
	day := int32(d.day)
	if max := lengthOfMonth(newYear, newMonth); day > max {
		day = max
	}
	return LocalDate{year: int32(newYear), month: int8(newMonth), day: int8(day)}, nil
}

// PlusYears returns the date the given number of years later, with February 29
// clamped to February 28 in non-leap years.
func (d LocalDate) PlusYears(years int64) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}
	months, err := safemath.MultiplyInt64(years, 12)
	if err != nil {
		return LocalDate{}, err
	}
	return d.PlusMonths(months)
}

// Get implements temporal.Temporal.
func (d LocalDate) Get(field temporal.Field) (int64, error) {
	switch field {
	case temporal.FieldYear:
		return int64(d.year), nil
	case temporal.FieldMonthOfYear:
		return int64(d.month), nil
	case temporal.FieldDayOfMonth:
		return int64(d.day), nil
	case temporal.FieldEpochDay:
		return d.EpochDay(), nil
	case temporal.FieldEpochMonth:
		return d.EpochMonth(), nil
	default:
		return 0, &temporal.UnsupportedFieldError{Field: field}
	}
}

// Range implements temporal.Temporal.
func (d LocalDate) Range(field temporal.Field) (temporal.ValueRange, error) {
	switch field {
	case temporal.FieldYear:
		return temporal.NewRange(MinYear, MaxYear), nil
	case temporal.FieldMonthOfYear:
		return temporal.NewRange(1, 12), nil
	case temporal.FieldDayOfMonth:
		return temporal.NewVariableRange(1, 1, 28, 31), nil
	case temporal.FieldEpochDay:
		return temporal.NewRange(minEpochDay, maxEpochDay), nil
	case temporal.FieldEpochMonth:
		return temporal.NewRange((MinYear-1970)*12, (MaxYear-1970)*12+11), nil
	default:
		return temporal.ValueRange{}, &temporal.UnsupportedFieldError{Field: field}
	}
}

// Chronology implements temporal.Temporal.
func (d LocalDate) Chronology() string {
	return ChronologyISO
}

// Plus implements temporal.Adjustable for the date units. Time units are not
// supported on a pure date.
func (d LocalDate) Plus(amount int64, unit temporal.Unit) (temporal.Adjustable, error) {
	switch unit {
	case temporal.UnitDays:
		return d.PlusDays(amount)
	case temporal.UnitWeeks:
		days, err := safemath.MultiplyInt64(amount, 7)
		if err != nil {
			return nil, err
		}
		return d.PlusDays(days)
	case temporal.UnitMonths:
		return d.PlusMonths(amount)
	case temporal.UnitYears:
		return d.PlusYears(amount)
	default:
		return nil, &temporal.UnsupportedUnitError{Unit: unit}
	}
}

// String returns the date in ISO-8601 extended form, such as "2010-01-01" or
// "-0500-03-09" for negative years.
func (d LocalDate) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

var monthLengths = [13]int32{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func lengthOfMonth(year int64, month int32) int32 {
	if month == 2 && safemath.IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// daysFromCivil converts a proleptic Gregorian date to days since 1970-01-01.
// Standard civil-calendar conversion over 400-year eras.
func daysFromCivil(y int64, m, d int32) int64 {
	if m <= 2 {
		y--
	}
	era := safemath.FloorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1     // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(epochDay int64) (y int64, m, d int32) {
	z := epochDay + 719468
	era := safemath.FloorDiv(z, 146097)
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d = int32(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int32(mp) + 3
	} else {
		m = int32(mp) - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

func mustEpochDay(y int64, m, d int32) int64 {
	return daysFromCivil(y, m, d)
}
