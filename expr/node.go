package expr

import (
	"math"
	"strconv"
)

// node is one vertex of the compiled expression tree. eval must be pure.
type node interface {
	eval(x float64) (float64, error)
	String() string
}

type numberNode struct{ v float64 }

func (n numberNode) eval(float64) (float64, error) { return n.v, nil }
func (n numberNode) String() string              { return strconv.FormatFloat(n.v, 'g', -1, 64) }

type constNode struct {
	name string
	v    float64
}

func (n constNode) eval(float64) (float64, error) { return n.v, nil }
func (n constNode) String() string              { return n.name }

type variableNode struct{ name string }

func (n variableNode) eval(x float64) (float64, error) { return x, nil }
func (n variableNode) String() string                { return n.name }

type negateNode struct{ arg node }

func (n negateNode) eval(x float64) (float64, error) {
	v, err := n.arg.eval(x)
	if err != nil {
		return 0, err
	}

	return -v, nil
}

func (n negateNode) String() string { return "(-" + n.arg.String() + ")" }

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) eval(x float64) (float64, error) {
	l, err := n.left.eval(x)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(x)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	case '%':
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return math.Mod(l, r), nil
	default: // '^'
		return math.Pow(l, r), nil
	}
}

func (n binaryNode) String() string {
	return "(" + n.left.String() + " " + string(n.op) + " " + n.right.String() + ")"
}

type callNode struct {
	name string
	fn   func(float64) float64
	arg  node
}

func (n callNode) eval(x float64) (float64, error) {
	v, err := n.arg.eval(x)
	if err != nil {
		return 0, err
	}

	return n.fn(v), nil
}

func (n callNode) String() string { return n.name + "(" + n.arg.String() + ")" }
