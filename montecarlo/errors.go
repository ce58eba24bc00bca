package montecarlo

import "errors"

var (
	// ErrNonPositiveCount indicates a sample count below 1.
	ErrNonPositiveCount = errors.New("montecarlo: number of samples must be positive")

	// ErrBadRange indicates minValue > maxValue or a non-finite value bound.
	ErrBadRange = errors.New("montecarlo: invalid value range")

	// ErrNoSamples indicates Area was given an empty SampleSet.
	ErrNoSamples = errors.New("montecarlo: no samples")
)
