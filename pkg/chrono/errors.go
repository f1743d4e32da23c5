package chrono

import "errors"

var (
	// ErrInvalidDate indicates a year, month or day outside its legal range.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTime indicates a time-of-day component outside its legal range.
	ErrInvalidTime = errors.New("invalid time")
)
