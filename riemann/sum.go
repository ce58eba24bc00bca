package riemann

import (
	"fmt"

	"github.com/katalvlaran/netarea/core"
)

// Sum returns the Riemann-sum estimate of ∫ f over iv with n rectangles.
//
// Errors: ErrNonPositiveCount, ErrUnknownEndpoint, core interval/integrand
// sentinels, or an evaluation error wrapped with the sample x.
func Sum(f core.Integrand, iv core.Interval, n int, endpoint Endpoint) (float64, error) {
	dx, err := prepare(f, iv, n, endpoint)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i < n; i++ {
		x := sampleX(iv, dx, i, n, endpoint)
		v, err := f.Evaluate(x)
		if err != nil {
			return 0, fmt.Errorf("riemann: f(%g): %w", x, err)
		}
		total += v
	}

	return total * dx, nil
}

// Partition returns the n rectangles Sum would add up, in ascending x order.
func Partition(f core.Integrand, iv core.Interval, n int, endpoint Endpoint) ([]Rect, error) {
	dx, err := prepare(f, iv, n, endpoint)
	if err != nil {
		return nil, err
	}

	rects := make([]Rect, n)
	for i := 0; i < n; i++ {
		x := sampleX(iv, dx, i, n, endpoint)
		v, err := f.Evaluate(x)
		if err != nil {
			return nil, fmt.Errorf("riemann: f(%g): %w", x, err)
		}
		x1 := iv.Lower + float64(i+1)*dx
		if i == n-1 {
			x1 = iv.Upper
		}
		rects[i] = Rect{X0: iv.Lower + float64(i)*dx, X1: x1, SampleX: x, Height: v}
	}

	return rects, nil
}

// prepare validates the inputs and returns dx.
func prepare(f core.Integrand, iv core.Interval, n int, endpoint Endpoint) (float64, error) {
	if err := core.ValidateIntegrand(f); err != nil {
		return 0, err
	}
	if err := iv.Validate(); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, ErrNonPositiveCount
	}
	if !endpoint.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownEndpoint, int(endpoint))
	}

	return iv.Width() / float64(n), nil
}

func sampleX(iv core.Interval, dx float64, i, n int, endpoint Endpoint) float64 {
	switch endpoint {
	case Right:
		if i == n-1 {
			return iv.Upper
		}
		return iv.Lower + float64(i+1)*dx
	case Midpoint:
		return iv.Lower + (float64(i)+0.5)*dx
	default:
		return iv.Lower + float64(i)*dx
	}
}
