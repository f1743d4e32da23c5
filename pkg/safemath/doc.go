// Package safemath provides overflow-checked integer arithmetic for date and
// time calculations.
//
// Calendar arithmetic routinely multiplies user-supplied amounts by large unit
// sizes (an hour is 3.6 trillion nanoseconds), so silent two's-complement
// wrapping turns small input mistakes into valid-looking garbage. Every
// operation in this package either returns the mathematically correct result
// or an error wrapping ErrOverflow; nothing wraps silently.
//
// # Operations
//
// The package covers both integer widths used by the chronokit value types:
//
//   - AddInt32 / AddInt64, SubtractInt32 / SubtractInt64
//   - MultiplyInt32, MultiplyInt64By (int64 × int32), MultiplyInt64
//   - NegateInt64 (fails for MinInt64)
//   - ToInt32 (checked narrowing)
//   - FloorDiv / FloorMod and their int32 variants
//
// FloorDiv and FloorMod implement true mathematical floor semantics, which
// differ from Go's truncating operators for negative dividends:
//
//	safemath.FloorDiv(-1, 4) // -1, where -1/4 == 0
//	safemath.FloorMod(-1, 4) // 3, where -1%4 == -1
//
// Floor semantics are what calendar math needs: day -1 of the epoch belongs to
// the previous 400-year cycle, not the current one.
//
// # Error Handling
//
// Failures are reported by wrapping the ErrOverflow sentinel together with the
// operation and its operands:
//
//	_, err := safemath.MultiplyInt64(math.MaxInt64, 2)
//	errors.Is(err, safemath.ErrOverflow) // true
//
// Callers in this module propagate the error unchanged; overflow is never
// recovered locally.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package safemath
