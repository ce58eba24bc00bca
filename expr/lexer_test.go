package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token) []tokenKind {
	out := make([]tokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.kind
	}
	return out
}

func texts(toks []token) []string {
	var out []string
	for _, t := range toks {
		if t.kind != tokEOF {
			out = append(out, t.text)
		}
	}
	return out
}

func TestSplitIdentifiers_LongestPrefix(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"xsinx", []string{"x", "sin", "x"}},
		{"exp", []string{"exp"}},
		{"ex", []string{"e", "x"}},
		{"log10x", []string{"log10", "x"}},
		{"pix", []string{"pi", "x"}},
		{"sinhx", []string{"sinh", "x"}},
		{"πx", []string{"π", "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			toks, err := tokenize(tc.src, "x")
			require.NoError(t, err)
			assert.Equal(t, tc.want, texts(toks))
		})
	}
}

func TestTokenize_Numbers(t *testing.T) {
	toks, err := tokenize("1.5e2 3 .25 2e", "x")
	require.NoError(t, err)
	assert.Equal(t, []tokenKind{tokNumber, tokNumber, tokNumber, tokNumber, tokConstant, tokEOF}, kinds(toks))
	assert.Equal(t, 150.0, toks[0].value)
	assert.Equal(t, 0.25, toks[2].value)

	_, err = tokenize(". x", "x")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestTokenize_Positions(t *testing.T) {
	_, err := tokenize("x + foo", "x")
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 4, se.Pos)
	assert.ErrorIs(t, err, ErrUnknownIdentifier)
}
