package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/riemann"
)

// numbers is the typed outcome of checks 1-8.
type numbers struct {
	method   Method
	endpoint riemann.Endpoint
	interval core.Interval
	points   int
}

// parseNumbers runs checks 1-8 in order.
//
// Stages:
//  1. Method / endpoint selection.
//  2. Text → number conversion (lower, upper, points).
//  3. Range checks (order, limits, point count).
func parseNumbers(in Input, cfg config) (numbers, *Rejection) {
	var out numbers

	// Stage 1: selections.
	m, ok := ParseMethod(in.Method)
	if !ok {
		return out, reject(CheckMethod, ErrMissingInput, MsgMethodMissing, nil)
	}
	out.method = m
	if m == RiemannSum {
		ep, err := riemann.ParseEndpoint(in.Endpoint)
		if err != nil {
			return out, reject(CheckEndpoint, ErrMissingInput, MsgEndpointMissing, err)
		}
		out.endpoint = ep
	}

	// Stage 2: conversions.
	lower, err := parseDouble(in.Lower)
	if err != nil {
		return out, reject(CheckLower, ErrInputFormat, MsgLowerInvalid, err)
	}
	upper, err := parseDouble(in.Upper)
	if err != nil {
		return out, reject(CheckUpper, ErrInputFormat, MsgUpperInvalid, err)
	}
	points, err := strconv.ParseInt(in.Points, 10, 32)
	if err != nil {
		return out, reject(CheckPoints, ErrInputFormat, MsgPointsInvalid, err)
	}

	// Stage 3: ranges. !(lower < upper) also refuses NaN bounds.
	if !(lower < upper) {
		return out, reject(CheckOrder, ErrInputRange, MsgBoundsOrder, core.ErrInvertedBounds)
	}
	if lower < -cfg.boundLimit || upper > cfg.boundLimit {
		return out, reject(CheckBounds, ErrInputRange, boundsMessage(cfg.boundLimit), nil)
	}
	if points < 1 || points > int64(cfg.maxPoints) {
		return out, reject(CheckPointRange, ErrInputRange, pointsMessage(cfg.maxPoints), nil)
	}

	out.interval = core.Interval{Lower: lower, Upper: upper}
	out.points = int(points)

	return out, nil
}

// parseDouble accepts what a JVM Double.parseDouble accepts for ordinary
// input: surrounding whitespace and control characters, an optional
// d/D/f/F suffix, "NaN" and "Infinity" spelled exactly. Go-only spellings
// ("inf", "nan", digit separators) are refused. Out-of-range literals
// saturate to ±Inf instead of failing.
func parseDouble(text string) (float64, error) {
	s := strings.TrimFunc(text, func(r rune) bool { return r <= ' ' })
	body := strings.TrimLeft(s, "+-")
	neg := strings.HasPrefix(s, "-")
	if len(s)-len(body) > 1 {
		return 0, fmt.Errorf("invalid number %q", text)
	}

	switch body {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	if n := len(body); n > 1 && strings.ContainsRune("dDfF", rune(body[n-1])) &&
		!strings.HasPrefix(strings.ToLower(body), "0x") {
		s = s[:len(s)-1]
		body = body[:n-1]
	}
	if body == "" || strings.ContainsAny(strings.ToLower(body), "in_") {
		return 0, fmt.Errorf("invalid number %q", text)
	}

	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		// Overflow is ±Inf and underflow is 0, as on the JVM.
		return v, nil
	}

	return v, err
}

func boundsMessage(limit float64) string {
	l := strconv.FormatFloat(limit, 'f', -1, 64)
	return fmt.Sprintf(msgBoundsLimitFormat, l, l)
}

func pointsMessage(maxPoints int) string {
	return fmt.Sprintf(msgPointsRangeFormat, groupThousands(maxPoints))
}

// groupThousands renders n with ',' separators: 100000 → "100,000".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
