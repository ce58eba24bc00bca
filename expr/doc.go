// Package expr parses and evaluates single-variable real formulas such as
// "x^2 - 4x + 1" or "sinx + 2cos(3x)".
//
// 🚀 What does it provide?
//
//	Parse(text, variable) compiles the text once into an immutable
//	*Expression. Eval(x) then evaluates the compiled tree as a pure
//	function of x: nothing is mutated between calls, so a single
//	Expression can be evaluated from any number of goroutines.
//
// ✨ Grammar (calculator-style, implicit multiplication supported):
//
//	expr   := term   { ('+' | '-') term }
//	term   := unary  { ('*' | '/' | '%') unary | unary }      // juxtaposition = '*'
//	unary  := ('+' | '-') unary | power
//	power  := primary [ '^' unary ]                          // right-associative
//	primary:= number | variable | constant
//	        | '(' expr ')'
//	        | function '(' expr ')'
//	        | function unary                                 // "sin x", "sinx"
//
//	– Numbers: 1, 2.5, .5, 1e-3.
//	– Constants: pi, π, e, phi, φ.
//	– Functions: abs acos asin atan cbrt ceil cos cosh cot csc exp expm1
//	  floor log log10 log1p log2 sec signum sin sinh sqrt tan tanh.
//	– Identifier runs are split by longest known prefix, so "xsinx" reads
//	  as x·sin(x) and "exp" wins over "e".
//	– Unary minus binds looser than '^':  -x^2 = -(x^2).
//
// ⚙️ Usage:
//
//	e, err := expr.Parse("x^2 - 4x + 1", "x")
//	if err != nil {
//		// errors.Is(err, expr.ErrSyntax) / expr.ErrUnknownIdentifier / ...
//	}
//	y, err := e.Eval(2) // -3
//
// Errors at evaluation time are limited to ErrDivisionByZero ('/' or '%'
// by an exact zero). NaN and ±Inf are ordinary results: log(-1) is NaN,
// log(0) is -Inf. Callers decide whether such values are acceptable.
//
// *Expression implements core.Integrand, so it plugs straight into the
// extrema, riemann and montecarlo packages.
package expr
