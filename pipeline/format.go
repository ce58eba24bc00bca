package pipeline

import (
	"math"
	"strconv"
	"strings"
)

// FormatDouble renders v the way a JVM prints a double: plain decimal with
// at least one fractional digit for 1e-3 ≤ |v| < 1e7, otherwise
// computerized scientific notation ("1.0E-5", "1.2345E7"). The shortest
// digit string that round-trips is used in both forms.
func FormatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 'e' gives "1.2345e+07" / "1e-05".
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	exp = strings.TrimLeft(exp[1:], "0")

	return mant + "E" + sign + exp
}
