package period_test

import (
	"testing"

	"github.com/dmitrymomot/chronokit/pkg/chrono"
	"github.com/dmitrymomot/chronokit/pkg/period"
)

func BenchmarkString(b *testing.B) {
	p := period.MustParse("P1Y2M3DT4H5M6.789S")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.String()
	}
}

func BenchmarkParse(b *testing.B) {
	b.Run("date only", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := period.Parse("P1Y2M3D"); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("full with fraction", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := period.Parse("P1Y2M3DT4H5M6.789S"); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkPlus(b *testing.B) {
	p := period.OfDate(1, 2, 3)
	q := period.OfDate(4, 5, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Plus(q); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBetweenDates(b *testing.B) {
	start := chrono.MustLocalDate(2012, 2, 29)
	end := chrono.MustLocalDate(2014, 2, 28)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := period.BetweenDates(start, end); err != nil {
			b.Fatal(err)
		}
	}
}
