// Package chrono provides calendar date and time-of-day value types: the
// proleptic ISO LocalDate and LocalTime, plus the Minguo and Thai Buddhist
// regional calendars.
//
// All types are immutable values implementing the temporal.Temporal and
// temporal.Adjustable contracts, which makes them usable with the period
// package's between calculations and with Period.AddTo.
//
// # Dates
//
// LocalDate stores year, month and day and converts to and from an epoch-day
// count (days since 1970-01-01) using exact integer civil-calendar math over
// 400-year eras, valid across the whole supported year range of ±999,999,999.
//
//	d := chrono.MustLocalDate(2010, 1, 15)
//	d.EpochDay()          // 14624
//	d.PlusMonths(1)       // 2010-02-15
//
// Month arithmetic clamps to the end of the month: January 31 plus one month
// is February 28, or February 29 in a leap year.
//
// # Regional Calendars
//
// MinguoDate and ThaiBuddhistDate share the ISO month and day structure and
// renumber only the year (Minguo = ISO − 1911, Thai Buddhist = ISO + 543).
// They are one epoch-day-backed representation tagged with a chronology
// identifier; there is no calendar class hierarchy. Because their
// month-of-year range is the fixed ISO 1..12, period calculations can carry
// months into years for them exactly as for ISO, while mixing calendars in a
// single calculation is rejected by the chronology check.
//
// # Times
//
// LocalTime stores a single nano-of-day count; hour, minute, second and
// nanosecond are derived. Arithmetic wraps around midnight.
//
// # Thread Safety
//
// All types are immutable values and safe for concurrent use.
package chrono
