package temporal

// Unit identifies an amount unit for period and date arithmetic, ordered from
// smallest to largest.
type Unit int

const (
	UnitNanos Unit = iota
	UnitMicros
	UnitMillis
	UnitSeconds
	UnitMinutes
	UnitHours
	UnitHalfDays
	UnitDays
	UnitWeeks
	UnitMonths
	UnitYears
)

// IsDurationEstimated reports whether the unit's length in exact time varies.
// Time units through half-days are exact; days and larger depend on the
// calendar (leap years, month lengths, daylight saving).
func (u Unit) IsDurationEstimated() bool {
	return u >= UnitDays
}

func (u Unit) String() string {
	switch u {
	case UnitNanos:
		return "Nanos"
	case UnitMicros:
		return "Micros"
	case UnitMillis:
		return "Millis"
	case UnitSeconds:
		return "Seconds"
	case UnitMinutes:
		return "Minutes"
	case UnitHours:
		return "Hours"
	case UnitHalfDays:
		return "HalfDays"
	case UnitDays:
		return "Days"
	case UnitWeeks:
		return "Weeks"
	case UnitMonths:
		return "Months"
	case UnitYears:
		return "Years"
	default:
		return "Unknown"
	}
}
