package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chronokit/pkg/chrono"
	"github.com/dmitrymomot/chronokit/pkg/period"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

// dateTimeValue is an ISO value exposing both date fields and nano-of-day.
type dateTimeValue struct {
	date  chrono.LocalDate
	clock chrono.LocalTime
}

func (v dateTimeValue) Get(field temporal.Field) (int64, error) {
	if field == temporal.FieldNanoOfDay {
		return v.clock.Get(field)
	}
	return v.date.Get(field)
}

func (v dateTimeValue) Range(field temporal.Field) (temporal.ValueRange, error) {
	if field == temporal.FieldNanoOfDay {
		return v.clock.Range(field)
	}
	return v.date.Range(field)
}

func (v dateTimeValue) Chronology() string {
	return v.date.Chronology()
}

// fieldlessValue is an ISO value that defines no fields at all.
type fieldlessValue struct{}

func (fieldlessValue) Get(field temporal.Field) (int64, error) {
	return 0, &temporal.UnsupportedFieldError{Field: field}
}

func (fieldlessValue) Range(field temporal.Field) (temporal.ValueRange, error) {
	return temporal.ValueRange{}, &temporal.UnsupportedFieldError{Field: field}
}

func (fieldlessValue) Chronology() string {
	return chrono.ChronologyISO
}

func TestBetweenDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end chrono.LocalDate
		want       period.Period
	}{
		{
			"same date",
			chrono.MustLocalDate(2010, 1, 1), chrono.MustLocalDate(2010, 1, 1),
			period.Zero,
		},
		{
			"one month",
			chrono.MustLocalDate(2010, 1, 1), chrono.MustLocalDate(2010, 2, 1),
			period.OfDate(0, 1, 0),
		},
		{
			"one day",
			chrono.MustLocalDate(2010, 1, 1), chrono.MustLocalDate(2010, 1, 2),
			period.OfDate(0, 0, 1),
		},
		{
			"years months days",
			chrono.MustLocalDate(2010, 1, 1), chrono.MustLocalDate(2011, 3, 5),
			period.OfDate(1, 2, 4),
		},
		{
			"leap day to end of february",
			chrono.MustLocalDate(2012, 2, 29), chrono.MustLocalDate(2014, 2, 28),
			period.OfDate(1, 11, 30),
		},
		{
			"just short of a month",
			chrono.MustLocalDate(2010, 1, 10), chrono.MustLocalDate(2010, 2, 9),
			period.OfDate(0, 0, 30),
		},
		{
			"backwards one day",
			chrono.MustLocalDate(2012, 2, 28), chrono.MustLocalDate(2012, 2, 27),
			period.OfDate(0, 0, -1),
		},
		{
			"backwards one month",
			chrono.MustLocalDate(2010, 2, 1), chrono.MustLocalDate(2010, 1, 1),
			period.OfDate(0, -1, 0),
		},
		{
			"backwards just short of a month",
			chrono.MustLocalDate(2010, 2, 9), chrono.MustLocalDate(2010, 1, 10),
			period.OfDate(0, 0, -30),
		},
		{
			"across a year boundary",
			chrono.MustLocalDate(2009, 11, 30), chrono.MustLocalDate(2010, 3, 1),
			period.OfDate(0, 3, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := period.BetweenDates(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBetweenDatesReconstructs(t *testing.T) {
	t.Parallel()

	// Adding the computed period back to the start lands on the end, except
	// when sequential year-then-month application clamps a leap-day start.
	starts := []chrono.LocalDate{
		chrono.MustLocalDate(2010, 1, 1),
		chrono.MustLocalDate(2010, 1, 31),
	}
	ends := []chrono.LocalDate{
		chrono.MustLocalDate(2010, 3, 1),
		chrono.MustLocalDate(2014, 2, 28),
		chrono.MustLocalDate(2011, 7, 4),
	}
	for _, start := range starts {
		for _, end := range ends {
			if end.EpochDay() < start.EpochDay() {
				continue
			}
			p, err := period.BetweenDates(start, end)
			require.NoError(t, err)
			got, err := p.AddTo(start)
			require.NoError(t, err)
			assert.Equal(t, end, got, "%s + %s", start, p)
		}
	}

	t.Run("leap-day start clamps under sequential application", func(t *testing.T) {
		t.Parallel()
		start := chrono.MustLocalDate(2012, 2, 29)
		end := chrono.MustLocalDate(2014, 2, 28)
		p, err := period.BetweenDates(start, end)
		require.NoError(t, err)
		assert.Equal(t, period.OfDate(1, 11, 30), p)

		// The year step clamps 2012-02-29 to 2013-02-28, so applying the
		// period field by field lands one day short of the original end.
		got, err := p.AddTo(start)
		require.NoError(t, err)
		assert.Equal(t, chrono.MustLocalDate(2014, 2, 27), got)
	})
}

func TestBetween(t *testing.T) {
	t.Parallel()

	t.Run("dates difference field by field", func(t *testing.T) {
		t.Parallel()
		got, err := period.Between(chrono.MustLocalDate(2010, 1, 1), chrono.MustLocalDate(2011, 3, 5))
		require.NoError(t, err)
		assert.Equal(t, period.OfDate(1, 2, 4), got)
	})

	t.Run("month carry normalizes with truncation", func(t *testing.T) {
		t.Parallel()
		// Field deltas are -1 year, +3 months, +12 days; the carry folds
		// them into 0 years, -9 months, keeping the positive days.
		got, err := period.Between(chrono.MustLocalDate(2010, 6, 12), chrono.MustLocalDate(2009, 9, 24))
		require.NoError(t, err)
		assert.Equal(t, period.OfDate(0, -9, 12), got)
	})

	t.Run("regional calendar uses its own year numbering", func(t *testing.T) {
		t.Parallel()
		start, err := chrono.NewMinguoDate(99, 6, 12)
		require.NoError(t, err)
		end, err := chrono.NewMinguoDate(100, 8, 15)
		require.NoError(t, err)
		got, err := period.Between(start, end)
		require.NoError(t, err)
		assert.Equal(t, period.OfDate(1, 2, 3), got)
	})

	t.Run("thai buddhist matches the equivalent iso difference", func(t *testing.T) {
		t.Parallel()
		isoStart := chrono.MustLocalDate(2010, 6, 12)
		isoEnd := chrono.MustLocalDate(2012, 1, 3)
		isoDiff, err := period.Between(isoStart, isoEnd)
		require.NoError(t, err)
		thaiDiff, err := period.Between(chrono.ThaiBuddhistFromISO(isoStart), chrono.ThaiBuddhistFromISO(isoEnd))
		require.NoError(t, err)
		assert.Equal(t, isoDiff, thaiDiff)
	})

	t.Run("times difference", func(t *testing.T) {
		t.Parallel()
		got, err := period.Between(chrono.MustLocalTime(10, 30, 0, 0), chrono.MustLocalTime(12, 0, 30, 0))
		require.NoError(t, err)
		want, err := period.OfTime(1, 30, 30)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("chronology mismatch", func(t *testing.T) {
		t.Parallel()
		minguo, err := chrono.NewMinguoDate(99, 6, 12)
		require.NoError(t, err)
		_, err = period.Between(chrono.MustLocalDate(2010, 6, 12), minguo)
		require.Error(t, err)
		assert.ErrorIs(t, err, period.ErrChronologyMismatch)
	})

	t.Run("fields the start lacks are skipped", func(t *testing.T) {
		t.Parallel()
		// The end carries a time-of-day on top of the date fields; the
		// date-only start never asks for it, so the result is date-only.
		end := dateTimeValue{
			date:  chrono.MustLocalDate(2011, 3, 5),
			clock: chrono.MustLocalTime(10, 30, 0, 0),
		}
		got, err := period.Between(chrono.MustLocalDate(2010, 1, 1), end)
		require.NoError(t, err)
		assert.Equal(t, period.OfDate(1, 2, 4), got)
	})

	t.Run("end missing a field the start has", func(t *testing.T) {
		t.Parallel()
		_, err := period.Between(chrono.MustLocalDate(2010, 6, 12), chrono.MustLocalTime(10, 0, 0, 0))
		require.Error(t, err)
		assert.ErrorIs(t, err, temporal.ErrUnsupportedField)

		_, err = period.Between(chrono.MustLocalTime(10, 0, 0, 0), chrono.MustLocalDate(2010, 6, 12))
		require.Error(t, err)
		assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
	})

	t.Run("no fields on the start", func(t *testing.T) {
		t.Parallel()
		_, err := period.Between(fieldlessValue{}, chrono.MustLocalDate(2010, 1, 1))
		require.Error(t, err)
		assert.ErrorIs(t, err, period.ErrNoValidFields)
	})

	t.Run("nil temporals", func(t *testing.T) {
		t.Parallel()
		_, err := period.Between(nil, chrono.MustLocalDate(2010, 1, 1))
		assert.ErrorIs(t, err, period.ErrNilTemporal)
		_, err = period.Between(chrono.MustLocalDate(2010, 1, 1), nil)
		assert.ErrorIs(t, err, period.ErrNilTemporal)
	})
}

func TestBetweenTimes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end chrono.LocalTime
		want       time.Duration
	}{
		{"forward", chrono.MustLocalTime(10, 0, 0, 0), chrono.MustLocalTime(11, 30, 0, 0), 90 * time.Minute},
		{"backward", chrono.MustLocalTime(11, 30, 0, 0), chrono.MustLocalTime(10, 0, 0, 0), -90 * time.Minute},
		{"same", chrono.MustLocalTime(6, 0, 0, 0), chrono.MustLocalTime(6, 0, 0, 0), 0},
		{"sub-second", chrono.MustLocalTime(0, 0, 0, 1), chrono.MustLocalTime(0, 0, 1, 0), time.Second - time.Nanosecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := period.BetweenTimes(tt.start, tt.end)
			assert.Equal(t, period.OfDuration(tt.want), got)
		})
	}
}
