package expr

import "math"

// builtin maps a function name to its implementation. All built-ins are
// unary and total: out-of-domain inputs yield NaN or ±Inf, never an error.
var builtin = map[string]func(float64) float64{
	"abs":    math.Abs,
	"acos":   math.Acos,
	"asin":   math.Asin,
	"atan":   math.Atan,
	"cbrt":   math.Cbrt,
	"ceil":   math.Ceil,
	"cos":    math.Cos,
	"cosh":   math.Cosh,
	"cot":    func(x float64) float64 { return 1 / math.Tan(x) },
	"csc":    func(x float64) float64 { return 1 / math.Sin(x) },
	"exp":    math.Exp,
	"expm1":  math.Expm1,
	"floor":  math.Floor,
	"log":    math.Log,
	"log10":  math.Log10,
	"log1p":  math.Log1p,
	"log2":   math.Log2,
	"sec":    func(x float64) float64 { return 1 / math.Cos(x) },
	"signum": signum,
	"sin":    math.Sin,
	"sinh":   math.Sinh,
	"sqrt":   math.Sqrt,
	"tan":    math.Tan,
	"tanh":   math.Tanh,
}

// constants maps a constant name to its value.
var constants = map[string]float64{
	"pi":  math.Pi,
	"π":   math.Pi,
	"e":   math.E,
	"phi": math.Phi,
	"φ":   math.Phi,
}

// signum returns -1, 0 or 1; NaN stays NaN.
func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // ±0 or NaN
	}
}

// IsFunction reports whether name is a supported built-in function.
func IsFunction(name string) bool {
	_, ok := builtin[name]
	return ok
}

// IsConstant reports whether name is a predefined constant.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}
