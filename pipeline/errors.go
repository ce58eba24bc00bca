package pipeline

import (
	"errors"
)

// Rejection kinds. A *Rejection matches exactly one of these via errors.Is.
var (
	// ErrMissingInput: method, endpoint or equation not supplied (checks 1, 2, 9).
	ErrMissingInput = errors.New("pipeline: missing input")

	// ErrInputFormat: a bound or the point count does not parse (checks 3-5).
	ErrInputFormat = errors.New("pipeline: malformed input")

	// ErrInputRange: bounds out of order or out of limits, bad point count (checks 6-8).
	ErrInputRange = errors.New("pipeline: input out of range")

	// ErrUnsupportedFunction: tangent, cotangent or division (checks 10, 11).
	ErrUnsupportedFunction = errors.New("pipeline: unsupported function")

	// ErrParse: the equation does not parse (check 12).
	ErrParse = errors.New("pipeline: invalid function")

	// ErrEvaluation: the equation fails to evaluate (check 13).
	ErrEvaluation = errors.New("pipeline: evaluation failed")

	// ErrContinuity: NaN or ±Inf on the interval (check 14).
	ErrContinuity = errors.New("pipeline: function not continuous")

	// ErrCanceled: the context ended before the cycle finished.
	ErrCanceled = errors.New("pipeline: canceled")
)

// Check identifies a validation step by its position in the order.
type Check int

// Validation steps in evaluation order.
const (
	CheckMethod Check = iota + 1
	CheckEndpoint
	CheckLower
	CheckUpper
	CheckPoints
	CheckOrder
	CheckBounds
	CheckPointRange
	CheckEquation
	CheckTangent
	CheckRational
	CheckParse
	CheckEvaluate
	CheckContinuity
	// CheckCompute covers failures inside the integrators after all
	// checks passed (including cancellation).
	CheckCompute
)

// Fixed user-facing messages.
const (
	MsgMethodMissing     = "Integration type not specified"
	MsgEndpointMissing   = "Riemann Sum direction not specified"
	MsgLowerInvalid      = "Lower bound must be a valid double"
	MsgUpperInvalid      = "Upper bound must be a valid double"
	MsgPointsInvalid     = "Number of points must be a valid integer"
	MsgBoundsOrder       = "Lower bound must be strictly less than upper bound"
	MsgEquationMissing   = "No equation selected"
	MsgTangent           = "Tangent and cotangent functions are not supported"
	MsgRational          = "Rational functions aren't supported"
	MsgInvalidFunction   = "Invalid function"
	MsgNotContinuous     = "Function is not continuous on the interval"
	MsgCanceled          = "Computation canceled"
	msgBoundsLimitFormat = "Bounds must be in between [-%s to %s]"
	msgPointsRangeFormat = "Number of points must be between 1 and %s"
)

// Rejection is the error returned for any refused cycle. Error() is the
// user-facing Message; Kind and Cause are reachable through errors.Is/As.
type Rejection struct {
	Check   Check
	Message string
	Kind    error

	// Cause is the underlying failure, if any (parse error, evaluation
	// error, context error).
	Cause error
}

// Error returns the user-facing message.
func (r *Rejection) Error() string { return r.Message }

// Unwrap exposes Kind and Cause.
func (r *Rejection) Unwrap() []error {
	if r.Cause == nil {
		return []error{r.Kind}
	}
	return []error{r.Kind, r.Cause}
}

func reject(check Check, kind error, msg string, cause error) *Rejection {
	return &Rejection{Check: check, Message: msg, Kind: kind, Cause: cause}
}

// KindName returns a short stable label for the rejection kind of err,
// suitable for metric labels and log attributes. nil maps to "none".
func KindName(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrMissingInput):
		return "missing_input"
	case errors.Is(err, ErrInputFormat):
		return "input_format"
	case errors.Is(err, ErrInputRange):
		return "input_range"
	case errors.Is(err, ErrUnsupportedFunction):
		return "unsupported_function"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrEvaluation):
		return "evaluation"
	case errors.Is(err, ErrContinuity):
		return "continuity"
	case errors.Is(err, ErrCanceled):
		return "canceled"
	default:
		return "internal"
	}
}

// Message returns the user-facing text for err: the Rejection message, or
// err.Error() for anything else.
func Message(err error) string {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Message
	}
	return err.Error()
}
