package pipeline

import (
	"context"
	"math"
	"strings"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/expr"
)

// compileEquation runs checks 9-12 (and 10-11 after 12 in Semantic mode).
func compileEquation(text string, mode Restriction) (*expr.Expression, *Rejection) {
	if strings.TrimSpace(text) == "" {
		return nil, reject(CheckEquation, ErrMissingInput, MsgEquationMissing, nil)
	}

	if mode == Lexical {
		if strings.Contains(text, "tan") || strings.Contains(text, "cot") {
			return nil, reject(CheckTangent, ErrUnsupportedFunction, MsgTangent, nil)
		}
		if strings.Contains(text, "/") {
			return nil, reject(CheckRational, ErrUnsupportedFunction, MsgRational, nil)
		}
	}

	e, err := expr.Parse(text, variable)
	if err != nil {
		return nil, reject(CheckParse, ErrParse, MsgInvalidFunction, err)
	}

	if mode == Semantic {
		if e.Uses("tan") || e.Uses("cot") {
			return nil, reject(CheckTangent, ErrUnsupportedFunction, MsgTangent, nil)
		}
		if e.HasDivision() {
			return nil, reject(CheckRational, ErrUnsupportedFunction, MsgRational, nil)
		}
	}

	return e, nil
}

// checkContinuity runs checks 13-14: f must evaluate to a finite value at
// every grid point Lower + i·step ≤ Upper, each rounded to the step.
//
// Complexity: O(W/step) evaluations.
func checkContinuity(ctx context.Context, f core.Integrand, iv core.Interval, step float64) *Rejection {
	inv := 1 / step
	for i := 0; ; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return reject(CheckContinuity, ErrCanceled, MsgCanceled, err)
			}
		}
		x := iv.Lower + float64(i)*step
		if x > iv.Upper {
			return nil
		}
		x = math.Round(x*inv) / inv

		y, err := f.Evaluate(x)
		if err != nil {
			return reject(CheckEvaluate, ErrEvaluation, MsgInvalidFunction, err)
		}
		if !core.IsFinite(y) {
			return reject(CheckContinuity, ErrContinuity, MsgNotContinuous, nil)
		}
	}
}
