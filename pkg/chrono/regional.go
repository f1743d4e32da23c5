package chrono

import (
	"fmt"

	"github.com/dmitrymomot/chronokit/pkg/safemath"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

// Chronology identifiers for the supported regional calendars. Both reuse the
// ISO month and day structure and differ from ISO only in year numbering, so
// they share one epoch-day-backed representation tagged with the chronology.
const (
	ChronologyMinguo       = "Minguo"
	ChronologyThaiBuddhist = "ThaiBuddhist"
)

// Year offsets from the proleptic ISO year. Minguo year 1 is ISO 1912;
// Thai Buddhist year 2513 is ISO 1970.
const (
	minguoYearOffset       int64 = -1911
	thaiBuddhistYearOffset int64 = 543
)

// calendarDate is a date in a year-offset regional calendar: the ISO date
// carries the epoch-day structure, the tag and offset supply the chronology.
type calendarDate struct {
	iso        LocalDate
	chronology string
	yearOffset int64
}

// Year returns the proleptic year in the regional calendar.
func (d calendarDate) Year() int64 {
	return int64(d.iso.Year()) + d.yearOffset
}

// Month returns the month-of-year, identical to ISO.
func (d calendarDate) Month() int32 {
	return d.iso.Month()
}

// Day returns the day-of-month, identical to ISO.
func (d calendarDate) Day() int32 {
	return d.iso.Day()
}

// EpochDay returns the count of days since 1970-01-01, which is calendar
// independent.
func (d calendarDate) EpochDay() int64 {
	return d.iso.EpochDay()
}

// Get implements temporal.Temporal. Only the year is renumbered; everything
// else delegates to the ISO representation.
func (d calendarDate) Get(field temporal.Field) (int64, error) {
	if field == temporal.FieldYear {
		return d.Year(), nil
	}
	return d.iso.Get(field)
}

// Range implements temporal.Temporal. The month range stays the fixed ISO
// 1..12, which is what permits month/year carry in period calculations across
// these calendars.
func (d calendarDate) Range(field temporal.Field) (temporal.ValueRange, error) {
	if field == temporal.FieldYear {
		return temporal.NewRange(MinYear+d.yearOffset, MaxYear+d.yearOffset), nil
	}
	return d.iso.Range(field)
}

// Chronology implements temporal.Temporal.
func (d calendarDate) Chronology() string {
	return d.chronology
}

func (d calendarDate) String() string {
	return fmt.Sprintf("%s %d-%02d-%02d", d.chronology, d.Year(), d.Month(), d.Day())
}

// MinguoDate is a date in the Minguo (Republic of China) calendar.
type MinguoDate struct {
	calendarDate
}

// NewMinguoDate creates a Minguo date from Minguo-proleptic year, month and
// day.
func NewMinguoDate(year int64, month, day int32) (MinguoDate, error) {
	isoYear, err := regionalISOYear(year, minguoYearOffset)
	if err != nil {
		return MinguoDate{}, err
	}
	iso, err := NewLocalDate(isoYear, month, day)
	if err != nil {
		return MinguoDate{}, err
	}
	return MinguoDate{calendarDate{iso: iso, chronology: ChronologyMinguo, yearOffset: minguoYearOffset}}, nil
}

// MinguoFromISO converts an ISO date to its Minguo equivalent.
func MinguoFromISO(date LocalDate) MinguoDate {
	return MinguoDate{calendarDate{iso: date, chronology: ChronologyMinguo, yearOffset: minguoYearOffset}}
}

// ISO returns the equivalent ISO date.
func (d MinguoDate) ISO() LocalDate {
	return d.iso
}

// ThaiBuddhistDate is a date in the Thai Buddhist calendar.
type ThaiBuddhistDate struct {
	calendarDate
}

// NewThaiBuddhistDate creates a Thai Buddhist date from Buddhist-era year,
// month and day.
func NewThaiBuddhistDate(year int64, month, day int32) (ThaiBuddhistDate, error) {
	isoYear, err := regionalISOYear(year, thaiBuddhistYearOffset)
	if err != nil {
		return ThaiBuddhistDate{}, err
	}
	iso, err := NewLocalDate(isoYear, month, day)
	if err != nil {
		return ThaiBuddhistDate{}, err
	}
	return ThaiBuddhistDate{calendarDate{iso: iso, chronology: ChronologyThaiBuddhist, yearOffset: thaiBuddhistYearOffset}}, nil
}

// regionalISOYear removes the calendar's year offset without silent int32
// truncation, so a wildly out-of-range input cannot wrap into the valid year
// range. The full ISO range check stays with NewLocalDate.
func regionalISOYear(year, yearOffset int64) (int32, error) {
	isoYear, err := safemath.SubtractInt64(year, yearOffset)
	if err != nil {
		return 0, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	narrowed, err := safemath.ToInt32(isoYear)
	if err != nil {
		return 0, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	return narrowed, nil
}

// ThaiBuddhistFromISO converts an ISO date to its Thai Buddhist equivalent.
func ThaiBuddhistFromISO(date LocalDate) ThaiBuddhistDate {
	return ThaiBuddhistDate{calendarDate{iso: date, chronology: ChronologyThaiBuddhist, yearOffset: thaiBuddhistYearOffset}}
}

// ISO returns the equivalent ISO date.
func (d ThaiBuddhistDate) ISO() LocalDate {
	return d.iso
}
