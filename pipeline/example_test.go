package pipeline_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netarea/pipeline"
)

func ExamplePipeline_Run() {
	p := pipeline.New()
	ctx := context.Background()

	res := p.Run(ctx, pipeline.Input{
		Equation: "x",
		Method:   "Riemann Sum",
		Endpoint: "Right",
		Lower:    "0",
		Upper:    "1",
		Points:   "4",
	})
	fmt.Println(res.NetAreaText)

	res = p.Run(ctx, pipeline.Input{
		Equation: "1/x",
		Method:   "Monte Carlo",
		Lower:    "-1",
		Upper:    "1",
		Points:   "100",
	})
	fmt.Println(res.ErrorMessage)
	// Output:
	// 0.625
	// Rational functions aren't supported
}
