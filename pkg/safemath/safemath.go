package safemath

import (
	"fmt"
	"math"
)

// Time unit sizes shared by the chronokit packages.
const (
	HoursPerDay      = 24
	MinutesPerHour   = 60
	MinutesPerDay    = MinutesPerHour * HoursPerDay
	SecondsPerMinute = 60
	SecondsPerHour   = SecondsPerMinute * MinutesPerHour
	SecondsPerDay    = SecondsPerHour * HoursPerDay

	NanosPerSecond int64 = 1_000_000_000
	NanosPerMinute       = NanosPerSecond * SecondsPerMinute
	NanosPerHour         = NanosPerMinute * MinutesPerHour
	NanosPerDay          = NanosPerHour * HoursPerDay
)

// AddInt32 adds two int32 values, failing instead of wrapping on overflow.
func AddInt32(a, b int32) (int32, error) {
	sum := a + b
	// A change of sign in the result when the inputs share a sign means overflow.
	if (a^sum) < 0 && (a^b) >= 0 {
		return 0, fmt.Errorf("addition overflows an int32: %d + %d: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

// AddInt64 adds two int64 values, failing instead of wrapping on overflow.
func AddInt64(a, b int64) (int64, error) {
	sum := a + b
	if (a^sum) < 0 && (a^b) >= 0 {
		return 0, fmt.Errorf("addition overflows an int64: %d + %d: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

// SubtractInt32 subtracts b from a, failing instead of wrapping on overflow.
func SubtractInt32(a, b int32) (int32, error) {
	result := a - b
	// A change of sign in the result when the inputs have differing signs means overflow.
	if (a^result) < 0 && (a^b) < 0 {
		return 0, fmt.Errorf("subtraction overflows an int32: %d - %d: %w", a, b, ErrOverflow)
	}
	return result, nil
}

// SubtractInt64 subtracts b from a, failing instead of wrapping on overflow.
func SubtractInt64(a, b int64) (int64, error) {
	result := a - b
	if (a^result) < 0 && (a^b) < 0 {
		return 0, fmt.Errorf("subtraction overflows an int64: %d - %d: %w", a, b, ErrOverflow)
	}
	return result, nil
}

// MultiplyInt32 multiplies two int32 values, failing if the product does not
// fit in an int32. The product is computed in int64 and range-checked.
func MultiplyInt32(a, b int32) (int32, error) {
	total := int64(a) * int64(b)
	if total < math.MinInt32 || total > math.MaxInt32 {
		return 0, fmt.Errorf("multiplication overflows an int32: %d * %d: %w", a, b, ErrOverflow)
	}
	return int32(total), nil
}

// MultiplyInt64By multiplies an int64 by an int32, failing on overflow.
// Detection uses a division round-trip, with the small factors -1, 0 and 1
// handled up front so the round-trip cannot divide by zero or miss the
// MinInt64 * -1 case.
func MultiplyInt64By(a int64, b int32) (int64, error) {
	switch b {
	case -1:
		if a == math.MinInt64 {
			return 0, fmt.Errorf("multiplication overflows an int64: %d * %d: %w", a, b, ErrOverflow)
		}
		return -a, nil
	case 0:
		return 0, nil
	case 1:
		return a, nil
	}
	total := a * int64(b)
	if total/int64(b) != a {
		return 0, fmt.Errorf("multiplication overflows an int64: %d * %d: %w", a, b, ErrOverflow)
	}
	return total, nil
}

// MultiplyInt64 multiplies two int64 values, failing on overflow.
func MultiplyInt64(a, b int64) (int64, error) {
	if b == 1 {
		return a, nil
	}
	if a == 1 {
		return b, nil
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	total := a * b
	if total/b != a || (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, fmt.Errorf("multiplication overflows an int64: %d * %d: %w", a, b, ErrOverflow)
	}
	return total, nil
}

// NegateInt64 negates the value, failing for MinInt64 whose negation is not
// representable.
func NegateInt64(value int64) (int64, error) {
	if value == math.MinInt64 {
		return 0, fmt.Errorf("negation overflows an int64: %d: %w", value, ErrOverflow)
	}
	return -value, nil
}

// ToInt32 narrows an int64 to an int32, failing if the value is out of range.
func ToInt32(value int64) (int32, error) {
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, fmt.Errorf("calculation overflows an int32: %d: %w", value, ErrOverflow)
	}
	return int32(value), nil
}

// FloorDiv returns the floor division of a by b, rounding toward negative
// infinity rather than toward zero. FloorDiv(-1, 4) is -1, not 0.
func FloorDiv(a, b int64) int64 {
	if a >= 0 {
		return a / b
	}
	return (a+1)/b - 1
}

// FloorMod returns the floor modulus of a by b. The result has the sign of
// the divisor: FloorMod(-1, 4) is 3.
func FloorMod(a, b int64) int64 {
	return (a%b + b) % b
}

// FloorDiv32 is FloorDiv over int32 operands.
func FloorDiv32(a, b int32) int32 {
	if a >= 0 {
		return a / b
	}
	return (a+1)/b - 1
}

// FloorMod32 is FloorMod over int32 operands.
func FloorMod32(a, b int32) int32 {
	return (a%b + b) % b
}

// IsLeapYear reports whether the year is a leap year under the proleptic
// ISO-8601 rules: divisible by 4, except centuries not divisible by 400.
func IsLeapYear(year int64) bool {
	return year&3 == 0 && (year%100 != 0 || year%400 == 0)
}
