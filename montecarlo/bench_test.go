package montecarlo_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/expr"
	"github.com/katalvlaran/netarea/montecarlo"
)

func BenchmarkGenerate_100k(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = montecarlo.Generate(-5, 5, -20, 20, 100000, montecarlo.WithSeed(int64(i)))
	}
}

func BenchmarkArea_100k(b *testing.B) {
	f := expr.MustParse("x^3 - 2xsinx", "x")
	iv := core.Interval{Lower: -5, Upper: 5}
	s, _ := montecarlo.Generate(-5, 5, -150, 150, 100000, montecarlo.WithSeed(1))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = montecarlo.Area(ctx, f, iv, s)
	}
}
