package montecarlo_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/expr"
	"github.com/katalvlaran/netarea/extrema"
	"github.com/katalvlaran/netarea/montecarlo"
)

func ExampleArea() {
	ctx := context.Background()
	f := expr.MustParse("-x", "x")
	iv := core.Interval{Lower: 1, Upper: 5}

	r, _ := extrema.Scan(ctx, f, iv)
	b := montecarlo.Bounds(iv, r)
	samples, _ := montecarlo.Generate(b.X0, b.X1, b.Y0, b.Y1, 100000, montecarlo.WithSeed(7))
	area, _ := montecarlo.Area(ctx, f, iv, samples)

	fmt.Printf("rect=%.0f area≈%.0f\n", b.Area(), area)
	// Output: rect=20 area≈-12
}
