package expr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netarea/core"
)

var _ core.Integrand = (*Expression)(nil)

// Expression is a compiled formula in one variable. It is immutable after
// Parse and safe for concurrent use.
type Expression struct {
	source   string
	variable string
	root     node
	funcs    []string
	division bool
}

// Parse compiles text as a formula in the named variable.
//
// Errors (all wrapped in *SyntaxError except ErrBadVariable):
//   - ErrBadVariable if variable is empty, not an identifier, or a reserved name.
//   - ErrUnknownIdentifier for a name that is not the variable, a constant or a function.
//   - ErrArity for f() or f(a, b).
//   - ErrSyntax for everything else that does not match the grammar.
//
// Complexity: O(len(text) · L), L = longest known name.
func Parse(text, variable string) (*Expression, error) {
	if !validVariable(variable) {
		return nil, fmt.Errorf("%w: %q", ErrBadVariable, variable)
	}

	toks, err := tokenize(text, variable)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks, funcs: make(map[string]struct{})}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, syntaxErrorf(ErrSyntax, t.pos, "unexpected %q", t.text)
	}

	funcs := make([]string, 0, len(p.funcs))
	for name := range p.funcs {
		funcs = append(funcs, name)
	}
	sort.Strings(funcs)

	return &Expression{
		source:   text,
		variable: variable,
		root:     root,
		funcs:    funcs,
		division: p.division,
	}, nil
}

// MustParse is Parse for formulas known to be valid; it panics on error.
func MustParse(text, variable string) *Expression {
	e, err := Parse(text, variable)
	if err != nil {
		panic(err)
	}

	return e
}

// Eval evaluates the formula at x. The only error is ErrDivisionByZero.
func (e *Expression) Eval(x float64) (float64, error) {
	return e.root.eval(x)
}

// Evaluate implements core.Integrand.
func (e *Expression) Evaluate(x float64) (float64, error) {
	return e.root.eval(x)
}

// Functions returns the sorted, de-duplicated names of the functions used.
func (e *Expression) Functions() []string {
	out := make([]string, len(e.funcs))
	copy(out, e.funcs)

	return out
}

// Uses reports whether the formula calls the named function.
func (e *Expression) Uses(name string) bool {
	i := sort.SearchStrings(e.funcs, name)
	return i < len(e.funcs) && e.funcs[i] == name
}

// HasDivision reports whether the formula contains '/'. The remainder
// operator '%' does not count.
func (e *Expression) HasDivision() bool { return e.division }

// Variable returns the free variable name.
func (e *Expression) Variable() string { return e.variable }

// Source returns the text passed to Parse.
func (e *Expression) Source() string { return e.source }

// String returns the source text.
func (e *Expression) String() string { return e.source }

// Canonical renders the fully parenthesized tree, e.g. "((x ^ 2) - (4 * x))".
func (e *Expression) Canonical() string { return e.root.String() }
