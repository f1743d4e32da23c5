package period

import (
	"strconv"

	"github.com/dmitrymomot/chronokit/pkg/safemath"
)

// Parse reads the canonical text form P[nY][nM][nD][T[nH][nM][n.fS]].
//
// Designator letters are accepted in either case, the decimal point may be a
// dot or a comma, each number may carry its own leading minus, and a minus
// before the whole string negates the result. At least one number/designator
// pair must be present, components must appear in order, negative zero is
// rejected, and a fraction (one to nine digits) is allowed on the seconds
// component only. Malformed input fails with a *ParseError carrying the byte
// offset; values whose combined time component exceeds the representable
// nanosecond range fail with an error wrapping safemath.ErrOverflow.
func Parse(text string) (Period, error) {
	pp := &periodParser{text: text}
	return pp.parse()
}

// MustParse is Parse that panics on error. Intended for constants and tests.
func MustParse(text string) Period {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Ranks within each section keep the designators ordered and unique.
const (
	rankYears = iota + 1
	rankMonths
	rankDays
)

const (
	rankHours = iota + 1
	rankMinutes
	rankSeconds
)

type periodParser struct {
	text string
	pos  int

	years, months, days     int32
	hours, minutes, seconds int32
	fracNanos               int64
	components              int
}

func (pp *periodParser) parse() (Period, error) {
	if len(pp.text) == 0 {
		return Zero, newParseError(pp.text, 0, "text is empty")
	}
	negate := false
	if pp.text[pp.pos] == '-' {
		negate = true
		pp.pos++
	}
	if !pp.expect('P') {
		return Zero, newParseError(pp.text, pp.pos, "expected 'P'")
	}
	if err := pp.parseDateSection(); err != nil {
		return Zero, err
	}
	if pp.pos < len(pp.text) {
		if err := pp.parseTimeSection(); err != nil {
			return Zero, err
		}
	}
	if pp.pos < len(pp.text) {
		return Zero, newParseError(pp.text, pp.pos, "unexpected trailing text")
	}
	if pp.components == 0 {
		return Zero, newParseError(pp.text, pp.pos, "at least one component is required")
	}
	p, err := NewWithNanos(pp.years, pp.months, pp.days, pp.hours, pp.minutes, pp.seconds, pp.fracNanos)
	if err != nil {
		return Zero, err
	}
	if negate {
		return p.MultipliedBy(-1)
	}
	return p, nil
}

func (pp *periodParser) parseDateSection() error {
	lastRank := 0
	for pp.pos < len(pp.text) {
		if upper(pp.text[pp.pos]) == 'T' {
			return nil
		}
		start := pp.pos
		value, _, err := pp.parseNumber(false)
		if err != nil {
			return err
		}
		if pp.pos >= len(pp.text) {
			return newParseError(pp.text, pp.pos, "number has no designator")
		}
		var rank int
		switch upper(pp.text[pp.pos]) {
		case 'Y':
			rank = rankYears
		case 'M':
			rank = rankMonths
		case 'D':
			rank = rankDays
		default:
			return newParseError(pp.text, pp.pos, "unknown designator")
		}
		if rank <= lastRank {
			return newParseError(pp.text, pp.pos, "designator out of order")
		}
		lastRank = rank
		pp.pos++
		field, err := safemath.ToInt32(value)
		if err != nil {
			return newParseError(pp.text, start, "value out of range")
		}
		switch rank {
		case rankYears:
			pp.years = field
		case rankMonths:
			pp.months = field
		case rankDays:
			pp.days = field
		}
		pp.components++
	}
	return nil
}

func (pp *periodParser) parseTimeSection() error {
	if !pp.expect('T') {
		return newParseError(pp.text, pp.pos, "expected 'T'")
	}
	if pp.pos >= len(pp.text) {
		return newParseError(pp.text, pp.pos, "time section is empty")
	}
	lastRank := 0
	for pp.pos < len(pp.text) {
		start := pp.pos
		value, hasFraction, err := pp.parseNumber(true)
		if err != nil {
			return err
		}
		if pp.pos >= len(pp.text) {
			return newParseError(pp.text, pp.pos, "number has no designator")
		}
		var rank int
		switch upper(pp.text[pp.pos]) {
		case 'H':
			rank = rankHours
		case 'M':
			rank = rankMinutes
		case 'S':
			rank = rankSeconds
		default:
			return newParseError(pp.text, pp.pos, "unknown designator")
		}
		if rank <= lastRank {
			return newParseError(pp.text, pp.pos, "designator out of order")
		}
		if hasFraction && rank != rankSeconds {
			return newParseError(pp.text, pp.pos, "fraction is only allowed on seconds")
		}
		lastRank = rank
		pp.pos++
		field, err := safemath.ToInt32(value)
		if err != nil {
			return newParseError(pp.text, start, "value out of range")
		}
		switch rank {
		case rankHours:
			pp.hours = field
		case rankMinutes:
			pp.minutes = field
		case rankSeconds:
			pp.seconds = field
		}
		pp.components++
	}
	return nil
}

// parseNumber reads an optionally signed integer, plus an optional fraction
// when allowFraction is set. The fraction value lands in fracNanos with the
// sign of the integer part. Negative zero without a fraction is rejected.
func (pp *periodParser) parseNumber(allowFraction bool) (int64, bool, error) {
	start := pp.pos
	negative := false
	if pp.pos < len(pp.text) && pp.text[pp.pos] == '-' {
		negative = true
		pp.pos++
	}
	digitsStart := pp.pos
	for pp.pos < len(pp.text) && isDigit(pp.text[pp.pos]) {
		pp.pos++
	}
	if pp.pos == digitsStart {
		return 0, false, newParseError(pp.text, pp.pos, "expected a number")
	}
	value, err := strconv.ParseInt(pp.text[digitsStart:pp.pos], 10, 64)
	if err != nil {
		return 0, false, newParseError(pp.text, start, "value out of range")
	}
	hasFraction := false
	var frac int64
	if allowFraction && pp.pos < len(pp.text) && (pp.text[pp.pos] == '.' || pp.text[pp.pos] == ',') {
		hasFraction = true
		pp.pos++
		fracStart := pp.pos
		for pp.pos < len(pp.text) && isDigit(pp.text[pp.pos]) {
			pp.pos++
		}
		digits := pp.pos - fracStart
		if digits == 0 {
			return 0, false, newParseError(pp.text, fracStart, "expected fraction digits")
		}
		if digits > 9 {
			return 0, false, newParseError(pp.text, fracStart, "fraction exceeds nine digits")
		}
		frac, _ = strconv.ParseInt(pp.text[fracStart:pp.pos], 10, 64)
		for i := digits; i < 9; i++ {
			frac *= 10
		}
	}
	if negative {
		if value == 0 && frac == 0 {
			return 0, false, newParseError(pp.text, start, "negative zero is not accepted")
		}
		value = -value
		frac = -frac
	}
	if hasFraction {
		pp.fracNanos = frac
	}
	return value, hasFraction, nil
}

func (pp *periodParser) expect(letter byte) bool {
	if pp.pos < len(pp.text) && upper(pp.text[pp.pos]) == letter {
		pp.pos++
		return true
	}
	return false
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
