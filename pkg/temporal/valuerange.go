package temporal

import (
	"fmt"
	"math"
)

// ValueRange describes the closed range of legal values for a field.
//
// A range is held as four points so that fields whose bounds vary between
// instances (day-of-month runs 1 to somewhere between 28 and 31) can be
// described precisely. Ranges compare by value with ==.
type ValueRange struct {
	minSmallest, minLargest int64
	maxSmallest, maxLargest int64
}

// NewRange creates a fixed range with constant minimum and maximum.
func NewRange(min, max int64) ValueRange {
	return ValueRange{minSmallest: min, minLargest: min, maxSmallest: max, maxLargest: max}
}

// NewVariableRange creates a range whose minimum and maximum each vary between
// a smallest and largest bound.
func NewVariableRange(minSmallest, minLargest, maxSmallest, maxLargest int64) ValueRange {
	return ValueRange{
		minSmallest: minSmallest,
		minLargest:  minLargest,
		maxSmallest: maxSmallest,
		maxLargest:  maxLargest,
	}
}

// IsFixed reports whether both bounds are constant across all instances.
// Only fixed ranges permit carry normalization between adjacent fields, such
// as folding twelve months into a year.
func (r ValueRange) IsFixed() bool {
	return r.minSmallest == r.minLargest && r.maxSmallest == r.maxLargest
}

// IsIntValue reports whether every legal value fits in an int32.
func (r ValueRange) IsIntValue() bool {
	return r.minSmallest >= math.MinInt32 && r.maxLargest <= math.MaxInt32
}

// Min returns the smallest possible minimum value.
func (r ValueRange) Min() int64 {
	return r.minSmallest
}

// Max returns the largest possible maximum value.
func (r ValueRange) Max() int64 {
	return r.maxLargest
}

// Contains reports whether the value is within the outer bounds of the range.
func (r ValueRange) Contains(value int64) bool {
	return value >= r.minSmallest && value <= r.maxLargest
}

func (r ValueRange) String() string {
	if r.IsFixed() {
		return fmt.Sprintf("%d - %d", r.minSmallest, r.maxLargest)
	}
	return fmt.Sprintf("%d/%d - %d/%d", r.minSmallest, r.minLargest, r.maxSmallest, r.maxLargest)
}
