package riemann

import (
	"errors"
	"strings"
)

// Endpoint selects where inside each sub-interval the function is sampled.
//
//   - Left: the left edge.
//   - Right: the right edge.
//   - Midpoint: the centre; exact for linear functions.
type Endpoint int

const (
	// Left samples the left edge of each sub-interval.
	Left Endpoint = iota

	// Right samples the right edge of each sub-interval.
	Right

	// Midpoint samples the centre of each sub-interval.
	Midpoint
)

var (
	// ErrNonPositiveCount indicates n < 1.
	ErrNonPositiveCount = errors.New("riemann: number of rectangles must be positive")

	// ErrUnknownEndpoint indicates an Endpoint outside Left/Right/Midpoint or
	// unparseable endpoint text.
	ErrUnknownEndpoint = errors.New("riemann: unknown endpoint")
)

// String returns "Left", "Right" or "Midpoint".
func (e Endpoint) String() string {
	switch e {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Midpoint:
		return "Midpoint"
	default:
		return "Endpoint(?)"
	}
}

// valid reports whether e is one of the declared endpoints.
func (e Endpoint) valid() bool {
	return e == Left || e == Right || e == Midpoint
}

// ParseEndpoint maps "left", "right" or "midpoint" (case-insensitive,
// surrounding whitespace ignored) to an Endpoint.
func ParseEndpoint(text string) (Endpoint, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "midpoint", "mid":
		return Midpoint, nil
	default:
		return 0, ErrUnknownEndpoint
	}
}

// Rect is one rectangle of a partition: it spans [X0, X1] and has signed
// height f(SampleX).
type Rect struct {
	X0, X1  float64
	SampleX float64
	Height  float64
}

// Area returns the signed area Height·(X1-X0).
func (r Rect) Area() float64 { return r.Height * (r.X1 - r.X0) }
