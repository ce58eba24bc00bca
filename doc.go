// Package netarea estimates the net signed area under a single-variable
// function f(x) on a closed interval [a, b].
//
// A caller supplies five text fields (equation, method, bounds, point
// count, and for Riemann sums an endpoint). The pipeline checks them in a
// fixed order and either rejects the cycle with one message or returns
// the estimate formatted as text.
//
// Layout:
//
//	core/        — Integrand, Interval and Point primitives
//	expr/        — equation parser and evaluator (implements core.Integrand)
//	extrema/     — grid scan for min/max of f on the interval
//	riemann/     — left, right and midpoint Riemann sums
//	montecarlo/  — sampling rectangle, seeded point generation, signed hit counting
//	pipeline/    — the validation cycle: parse, check, integrate, format
//	internal/    — config (YAML), metrics (Prometheus), tui (Bubble Tea form)
//	cmd/netarea/ — CLI: interactive form and `eval` for scripts
//
// Quick example:
//
//	p := pipeline.New()
//	res := p.Run(ctx, pipeline.Input{
//		Equation: "x^2 - 4x", Method: "Riemann Sum", Endpoint: "Left",
//		Lower: "0", Upper: "4", Points: "1000",
//	})
//	fmt.Println(res.NetAreaText, res.ErrorMessage)
//
//	go install github.com/katalvlaran/netarea/cmd/netarea@latest
package netarea
