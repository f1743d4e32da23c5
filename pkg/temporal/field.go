package temporal

// Field identifies a calendar or clock field on a date-time value.
//
// The set is closed: field-polymorphic code switches exhaustively over these
// constants rather than dispatching through an open interface.
type Field int

const (
	// FieldYear is the proleptic year within the value's chronology.
	FieldYear Field = iota
	// FieldMonthOfYear is the month within the year, 1-based.
	FieldMonthOfYear
	// FieldDayOfMonth is the day within the month, 1-based.
	FieldDayOfMonth
	// FieldNanoOfDay is the nanosecond within the day, 0-based.
	FieldNanoOfDay
	// FieldEpochDay is the count of days since 1970-01-01.
	FieldEpochDay
	// FieldEpochMonth is the count of months since January 1970.
	FieldEpochMonth
)

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "Year"
	case FieldMonthOfYear:
		return "MonthOfYear"
	case FieldDayOfMonth:
		return "DayOfMonth"
	case FieldNanoOfDay:
		return "NanoOfDay"
	case FieldEpochDay:
		return "EpochDay"
	case FieldEpochMonth:
		return "EpochMonth"
	default:
		return "Unknown"
	}
}
