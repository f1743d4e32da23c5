// Package period provides an immutable quantity of time expressed in calendar
// and clock units: years, months, days and a nanosecond total for the time
// part.
//
// A period is a bag of independent fields, not a point on a timeline. Adding
// periods adds field by field with no carrying, so one year plus minus-three
// months stays exactly that until an explicit normalization is requested.
// This keeps "one month" meaning "one month" whether it lands on February or
// July.
//
// # Construction
//
//	p, err := period.New(1, 2, 3, 4, 5, 6)     // P1Y2M3DT4H5M6S
//	d := period.OfDate(0, 0, 14)               // P14D
//	q, err := period.Of(6, temporal.UnitHours) // PT6H
//	r, err := period.Parse("P1Y2M3D")
//
// All factories return the shared Zero value for an all-zero period, so zero
// checks are plain comparisons:
//
//	if p.IsZero() { ... }
//
// # Arithmetic
//
//	sum, err := p.Plus(q)
//	doubled, err := p.MultipliedBy(2)
//	later, err := p.AddTo(someDate)
//
// Every operation checks for overflow and fails with an error wrapping
// safemath.ErrOverflow rather than wrapping around. Normalization between
// fields is opt-in through NormalizeHoursToDays, NormalizeDaysToHours and
// NormalizeMonthsISO.
//
// # Between Calculations
//
// Between computes the difference of two temporals generically by probing
// fields; BetweenDates and BetweenTimes are the concrete ISO calculations:
//
//	p, err := period.BetweenDates(start, end) // years, months, days
//
// # Text Form
//
// String and Parse speak the ISO-8601 duration format, including negative
// components and fractional seconds:
//
//	period.MustParse("PT-0.5S").String() // "PT-0.5S"
//
// Period implements encoding.TextMarshaler and TextUnmarshaler plus the
// yaml.v3 marshaling interfaces, so it embeds directly in config and API
// payload structs.
//
// # Error Handling
//
// The package exposes sentinel errors for matching with errors.Is:
//
//   - ErrNilTemporal for nil temporal arguments
//   - ErrChronologyMismatch when Between is given mixed calendars
//   - ErrNoValidFields when no shared field can be probed
//   - ErrCalendarUnits when ToDuration meets years, months or days
//
// Parse failures are reported as *ParseError with the input and byte offset.
package period
