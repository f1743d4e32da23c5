// Package temporal defines the small shared vocabulary between date-time
// values and the calculations that consume them: calendar fields, amount
// units, value ranges, and the accessor interfaces.
//
// The field and unit sets are closed enums. Calculations switch exhaustively
// over them, which keeps per-variant behavior in one place instead of
// scattering it across implementations. Values that cannot answer a probe
// return an error wrapping ErrUnsupportedField or ErrUnsupportedUnit rather
// than a zero value, so "absent" and "zero" stay distinguishable.
//
// # Interfaces
//
// Temporal is the read-only contract: Get a field, Range a field, identify
// the Chronology. Adjustable adds unit arithmetic and is the target of the
// period double-dispatch: a Period applies itself to a date by calling Plus
// once per non-zero field, years first, then months, days and nanoseconds.
//
// # Value Ranges
//
// ValueRange carries four points so variable-bound fields (day-of-month) are
// described without loss. Its IsFixed predicate is what allows the generic
// between calculation to decide whether folding months into years is safe for
// a given chronology:
//
//	r, _ := date.Range(temporal.FieldMonthOfYear)
//	if r.IsFixed() && r.IsIntValue() {
//	    // month-of-year is constant (e.g. 1..12), carry is safe
//	}
//
// # Thread Safety
//
// Everything in this package is an immutable value; all functions are safe
// for concurrent use.
package temporal
