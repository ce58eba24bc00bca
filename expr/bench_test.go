package expr_test

import (
	"testing"

	"github.com/katalvlaran/netarea/expr"
)

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = expr.Parse("x^3 - 2xsinx + log10(abs(x)+1)", "x")
	}
}

func BenchmarkEval(b *testing.B) {
	e := expr.MustParse("x^3 - 2xsinx + log10(abs(x)+1)", "x")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Eval(float64(i%1000) / 10)
	}
}
