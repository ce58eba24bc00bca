package expr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenKind classifies lexical tokens.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokVariable
	tokConstant
	tokFunction
	tokOperator
	tokLParen
	tokRParen
	tokComma
)

// token is one lexical unit. For operators text holds the operator rune.
type token struct {
	kind  tokenKind
	text  string
	value float64 // tokNumber, tokConstant
	pos   int     // byte offset in the source
}

// lexer turns source text into tokens, splitting identifier runs into known
// names by longest prefix.
type lexer struct {
	src      string
	variable string
	pos      int
}

// tokenize scans the whole source. The returned slice always ends in tokEOF.
//
// Complexity: O(len(src) · L) where L is the longest known name.
func tokenize(src, variable string) ([]token, error) {
	lx := &lexer{src: src, variable: variable}
	var out []token
	for {
		lx.skipSpace()
		if lx.pos >= len(lx.src) {
			out = append(out, token{kind: tokEOF, pos: lx.pos})
			return out, nil
		}

		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		switch {
		case isDigit(r) || r == '.':
			tok, err := lx.number()
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
		case isIdentStart(r):
			toks, err := lx.identifiers()
			if err != nil {
				return nil, err
			}
			out = append(out, toks...)
		case strings.ContainsRune("+-*/%^", r):
			out = append(out, token{kind: tokOperator, text: string(r), pos: lx.pos})
			lx.pos += size
		case r == '(':
			out = append(out, token{kind: tokLParen, text: "(", pos: lx.pos})
			lx.pos += size
		case r == ')':
			out = append(out, token{kind: tokRParen, text: ")", pos: lx.pos})
			lx.pos += size
		case r == ',':
			out = append(out, token{kind: tokComma, text: ",", pos: lx.pos})
			lx.pos += size
		default:
			return nil, syntaxErrorf(ErrSyntax, lx.pos, "unexpected character %q", r)
		}
	}
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		lx.pos += size
	}
}

// number scans digits [. digits] [e|E [+|-] digits]. The exponent is only
// consumed when a digit follows, so "2e" lexes as 2 followed by the constant e.
func (lx *lexer) number() (token, error) {
	start := lx.pos
	digits := 0
	for lx.pos < len(lx.src) && isDigit(rune(lx.src[lx.pos])) {
		lx.pos++
		digits++
	}
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' {
		lx.pos++
		for lx.pos < len(lx.src) && isDigit(rune(lx.src[lx.pos])) {
			lx.pos++
			digits++
		}
	}
	if digits == 0 {
		return token{}, syntaxErrorf(ErrSyntax, start, "malformed number")
	}
	if lx.pos < len(lx.src) && (lx.src[lx.pos] == 'e' || lx.src[lx.pos] == 'E') {
		j := lx.pos + 1
		if j < len(lx.src) && (lx.src[j] == '+' || lx.src[j] == '-') {
			j++
		}
		if j < len(lx.src) && isDigit(rune(lx.src[j])) {
			for j < len(lx.src) && isDigit(rune(lx.src[j])) {
				j++
			}
			lx.pos = j
		}
	}

	text := lx.src[start:lx.pos]
	v, err := parseNumber(text)
	if err != nil {
		return token{}, syntaxErrorf(ErrSyntax, start, "malformed number %q", text)
	}

	return token{kind: tokNumber, text: text, value: v, pos: start}, nil
}

// identifiers consumes one identifier run and splits it into known names.
func (lx *lexer) identifiers() ([]token, error) {
	start := lx.pos
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !isIdentPart(r) {
			break
		}
		lx.pos += size
	}

	return splitIdentifiers(lx.src[start:lx.pos], start, lx.variable)
}

// splitIdentifiers resolves a run such as "xsinx" into [x, sin, x] by
// repeatedly taking the longest known name at the current offset.
func splitIdentifiers(run string, offset int, variable string) ([]token, error) {
	var out []token
	i := 0
	for i < len(run) {
		rest := run[i:]
		best := ""
		kind := tokEOF
		for n := len(rest); n > 0; n-- {
			if !utf8.RuneStart(rest[0]) || (n < len(rest) && !utf8.RuneStart(rest[n])) {
				continue
			}
			cand := rest[:n]
			switch {
			case cand == variable:
				best, kind = cand, tokVariable
			case IsFunction(cand):
				best, kind = cand, tokFunction
			case IsConstant(cand):
				best, kind = cand, tokConstant
			}
			if best != "" {
				break
			}
		}
		if best == "" && isDigit(rune(rest[0])) {
			// "x2" reads as x·2.
			j := 0
			for j < len(rest) && isDigit(rune(rest[j])) {
				j++
			}
			v, _ := parseNumber(rest[:j])
			out = append(out, token{kind: tokNumber, text: rest[:j], value: v, pos: offset + i})
			i += j

			continue
		}
		if best == "" {
			return nil, syntaxErrorf(ErrUnknownIdentifier, offset+i, "unknown name %q", rest)
		}

		tok := token{kind: kind, text: best, pos: offset + i}
		if kind == tokConstant {
			tok.value = constants[best]
		}
		out = append(out, tok)
		i += len(best)
	}

	return out, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }

// validVariable reports whether name can serve as the free variable.
func validVariable(name string) bool {
	if name == "" || IsFunction(name) || IsConstant(name) {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}

	return true
}
