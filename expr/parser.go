package expr

import "strconv"

// parser is a recursive-descent parser over a token slice. It records which
// functions were called and whether any '/' or '%' appears, so callers can
// inspect the formula without walking the tree.
type parser struct {
	toks     []token
	i        int
	funcs    map[string]struct{}
	division bool
}

func parseNumber(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}

	return t
}

func (p *parser) isOp(ops string) (byte, bool) {
	t := p.peek()
	if t.kind != tokOperator {
		return 0, false
	}
	for i := 0; i < len(ops); i++ {
		if t.text[0] == ops[i] {
			return ops[i], true
		}
	}

	return 0, false
}

// parseExpr: term { ('+' | '-') term }
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("+-")
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// parseTerm: unary { ('*' | '/' | '%') unary | unary }
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("*/%")
		switch {
		case ok:
			p.next()
			if op == '/' {
				p.division = true
			}
		case startsOperand(p.peek()):
			op = '*' // implicit multiplication: "4x", "2sinx", "x(x+1)"
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// parseUnary: ('+' | '-') unary | power
func (p *parser) parseUnary() (node, error) {
	if op, ok := p.isOp("+-"); ok {
		p.next()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '-' {
			return negateNode{arg: arg}, nil
		}
		return arg, nil
	}

	return p.parsePower()
}

// parsePower: primary [ '^' unary ]. Recursing into unary for the exponent
// makes '^' right-associative and admits 2^-x.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.isOp("^"); !ok {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binaryNode{op: '^', left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numberNode{v: t.value}, nil
	case tokConstant:
		return constNode{name: t.text, v: t.value}, nil
	case tokVariable:
		return variableNode{name: t.text}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(tokRParen, t.pos); err != nil {
			return nil, err
		}
		return inner, nil
	case tokFunction:
		return p.parseCall(t)
	case tokEOF:
		return nil, syntaxErrorf(ErrSyntax, t.pos, "unexpected end of formula")
	default:
		return nil, syntaxErrorf(ErrSyntax, t.pos, "unexpected %q", t.text)
	}
}

// parseCall handles "f(expr)" and the bare form "f operand".
func (p *parser) parseCall(fn token) (node, error) {
	p.funcs[fn.text] = struct{}{}
	impl := builtin[fn.text]

	if p.peek().kind != tokLParen {
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return callNode{name: fn.text, fn: impl, arg: arg}, nil
	}

	open := p.next()
	if p.peek().kind == tokRParen {
		return nil, syntaxErrorf(ErrArity, open.pos, "%s() has no argument", fn.text)
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind == tokComma {
		return nil, syntaxErrorf(ErrArity, t.pos, "%s takes one argument", fn.text)
	}
	if err = p.expect(tokRParen, open.pos); err != nil {
		return nil, err
	}

	return callNode{name: fn.text, fn: impl, arg: arg}, nil
}

// expect consumes a token of the given kind or reports the unmatched opener.
func (p *parser) expect(kind tokenKind, openPos int) error {
	t := p.peek()
	if t.kind == kind {
		p.next()
		return nil
	}
	if t.kind == tokEOF {
		return syntaxErrorf(ErrSyntax, openPos, "unclosed parenthesis")
	}

	return syntaxErrorf(ErrSyntax, t.pos, "unexpected %q, want ')'", t.text)
}

// startsOperand reports whether t can begin an implicitly multiplied factor.
func startsOperand(t token) bool {
	switch t.kind {
	case tokNumber, tokConstant, tokVariable, tokFunction, tokLParen:
		return true
	default:
		return false
	}
}
