package chrono_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chronokit/pkg/chrono"
	"github.com/dmitrymomot/chronokit/pkg/temporal"
)

func TestMinguoDate(t *testing.T) {
	t.Parallel()

	d, err := chrono.NewMinguoDate(99, 6, 12)
	require.NoError(t, err)

	assert.Equal(t, chrono.ChronologyMinguo, d.Chronology())
	assert.Equal(t, int64(99), d.Year())
	assert.Equal(t, chrono.MustLocalDate(2010, 6, 12), d.ISO())
	assert.Equal(t, chrono.MustLocalDate(2010, 6, 12).EpochDay(), d.EpochDay())

	year, err := d.Get(temporal.FieldYear)
	require.NoError(t, err)
	assert.Equal(t, int64(99), year)

	month, err := d.Get(temporal.FieldMonthOfYear)
	require.NoError(t, err)
	assert.Equal(t, int64(6), month)

	fromISO := chrono.MinguoFromISO(chrono.MustLocalDate(2010, 6, 12))
	assert.Equal(t, d, fromISO)
}

func TestThaiBuddhistDate(t *testing.T) {
	t.Parallel()

	d, err := chrono.NewThaiBuddhistDate(2553, 6, 12)
	require.NoError(t, err)

	assert.Equal(t, chrono.ChronologyThaiBuddhist, d.Chronology())
	assert.Equal(t, int64(2553), d.Year())
	assert.Equal(t, chrono.MustLocalDate(2010, 6, 12), d.ISO())

	year, err := d.Get(temporal.FieldYear)
	require.NoError(t, err)
	assert.Equal(t, int64(2553), year)
}

func TestRegionalMonthRangeIsFixedISO(t *testing.T) {
	t.Parallel()

	minguo, err := chrono.NewMinguoDate(99, 6, 12)
	require.NoError(t, err)
	thai, err := chrono.NewThaiBuddhistDate(2553, 6, 12)
	require.NoError(t, err)

	for _, d := range []temporal.Temporal{minguo, thai} {
		r, err := d.Range(temporal.FieldMonthOfYear)
		require.NoError(t, err)
		assert.Equal(t, temporal.NewRange(1, 12), r)
		assert.True(t, r.IsFixed())
	}
}

func TestRegionalYearRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		year int64
	}{
		// int32(year + 1911) would wrap to Minguo-valid 3911 without the
		// widening check.
		{"wraps around int32", int64(1) << 32},
		{"above iso maximum", 1_000_001_000},
		{"below iso minimum", -1_000_002_000},
		{"int64 maximum", math.MaxInt64},
		{"int64 minimum", math.MinInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := chrono.NewMinguoDate(tt.year, 6, 12)
			require.ErrorIs(t, err, chrono.ErrInvalidDate)

			_, err = chrono.NewThaiBuddhistDate(tt.year, 6, 12)
			require.ErrorIs(t, err, chrono.ErrInvalidDate)
		})
	}
}

func TestRegionalLeapValidation(t *testing.T) {
	t.Parallel()

	// Minguo 101 is ISO 2012, a leap year.
	_, err := chrono.NewMinguoDate(101, 2, 29)
	require.NoError(t, err)

	// Minguo 100 is ISO 2011, not a leap year.
	_, err = chrono.NewMinguoDate(100, 2, 29)
	require.ErrorIs(t, err, chrono.ErrInvalidDate)
}
