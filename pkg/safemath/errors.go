package safemath

import "errors"

// ErrOverflow indicates an arithmetic result outside the representable range
// of its integer width. Every failing operation in this package wraps it, so
// callers match with errors.Is(err, safemath.ErrOverflow).
var ErrOverflow = errors.New("arithmetic overflow")
