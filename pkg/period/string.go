package period

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/chronokit/pkg/safemath"
)

// String renders the period in the canonical ISO-8601 subset
// P[nY][nM][nD][T[nH][nM][n.fS]]. The zero period is "PT0S". Each field
// carries its own sign; the seconds and sub-second parts share one sign
// taken from the combined sub-minute remainder, and the fraction is printed
// with trailing zeros stripped.
func (p Period) String() string {
	if p == Zero {
		return "PT0S"
	}
	var buf strings.Builder
	buf.WriteByte('P')
	if p.years != 0 {
		buf.WriteString(strconv.FormatInt(int64(p.years), 10))
		buf.WriteByte('Y')
	}
	if p.months != 0 {
		buf.WriteString(strconv.FormatInt(int64(p.months), 10))
		buf.WriteByte('M')
	}
	if p.days != 0 {
		buf.WriteString(strconv.FormatInt(int64(p.days), 10))
		buf.WriteByte('D')
	}
	if p.nanos != 0 {
		buf.WriteByte('T')
		hours := p.nanos / safemath.NanosPerHour
		minutes := (p.nanos / safemath.NanosPerMinute) % 60
		secondNanos := p.nanos % safemath.NanosPerMinute
		if hours != 0 {
			buf.WriteString(strconv.FormatInt(hours, 10))
			buf.WriteByte('H')
		}
		if minutes != 0 {
			buf.WriteString(strconv.FormatInt(minutes, 10))
			buf.WriteByte('M')
		}
		if secondNanos != 0 {
			writeSeconds(&buf, secondNanos)
		}
	}
	return buf.String()
}

// writeSeconds renders the sub-minute remainder as seconds with an optional
// fraction. The sign of the whole remainder decides the leading minus, so a
// remainder of +100ms built from -1s +1.1s still prints "0.1S".
func writeSeconds(buf *strings.Builder, secondNanos int64) {
	secondPart := secondNanos / safemath.NanosPerSecond
	nanoPart := secondNanos % safemath.NanosPerSecond
	if nanoPart == 0 {
		buf.WriteString(strconv.FormatInt(secondPart, 10))
		buf.WriteByte('S')
		return
	}
	if secondNanos < 0 {
		secondPart = -secondPart
		nanoPart = -nanoPart
		buf.WriteByte('-')
	}
	buf.WriteString(strconv.FormatInt(secondPart, 10))
	buf.WriteByte('.')
	// Adding one second keeps the leading zeros of the fraction; drop the
	// artificial first digit, then the trailing zeros.
	frac := strconv.FormatInt(nanoPart+safemath.NanosPerSecond, 10)[1:]
	frac = strings.TrimRight(frac, "0")
	buf.WriteString(frac)
	buf.WriteByte('S')
}
