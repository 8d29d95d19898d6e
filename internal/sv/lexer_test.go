package sv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexerTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kinds []TokenKind
	}{
		{
			name:  "empty input",
			input: "",
			kinds: []TokenKind{},
		},
		{
			name:  "simple declaration",
			input: "wire a;",
			kinds: []TokenKind{KindIdent, KindWhitespace, KindIdent, KindSymbol},
		},
		{
			name:  "line comment",
			input: "a // comment\nb",
			kinds: []TokenKind{KindIdent, KindWhitespace, KindComment, KindWhitespace, KindIdent},
		},
		{
			name:  "block comment",
			input: "a /* multi\nline */ b",
			kinds: []TokenKind{KindIdent, KindWhitespace, KindComment, KindWhitespace, KindIdent},
		},
		{
			name:  "unterminated block comment",
			input: "/* never closed\nstill comment",
			kinds: []TokenKind{KindComment},
		},
		{
			name:  "string literal",
			input: `$display("hi there");`,
			kinds: []TokenKind{KindSymbol, KindIdent, KindSymbol, KindString, KindSymbol, KindSymbol},
		},
		{
			name:  "string with escaped quote",
			input: `"a\"b"`,
			kinds: []TokenKind{KindString},
		},
		{
			name:  "unterminated string stops at newline",
			input: "\"open\nwire a;",
			kinds: []TokenKind{KindString, KindWhitespace, KindIdent, KindWhitespace, KindIdent, KindSymbol},
		},
		{
			name:  "macro directive",
			input: "`define WIDTH 8",
			kinds: []TokenKind{KindMacro, KindWhitespace, KindIdent, KindWhitespace, KindNumber},
		},
		{
			name:  "based number literal",
			input: "4'b1010",
			kinds: []TokenKind{KindNumber},
		},
		{
			name:  "escaped identifier",
			input: `\bus+index end`,
			kinds: []TokenKind{KindIdent, KindWhitespace, KindIdent},
		},
		{
			name:  "division is not a comment",
			input: "a / b",
			kinds: []TokenKind{KindIdent, KindWhitespace, KindSymbol, KindWhitespace, KindIdent},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tokens := NewLexer(tc.input).Tokenize()
			assert.Equal(t, tc.kinds, kindsOf(tokens))
		})
	}
}

func TestLexerTokensAreContiguous(t *testing.T) {
	t.Parallel()

	input := "module m; // c\n\tinitial $display(\"x\ty\");\n`define A_B 4'hF\nendmodule\n"
	tokens := NewLexer(input).Tokenize()

	require.NotEmpty(t, tokens)
	offset := 0
	for _, tok := range tokens {
		assert.Equal(t, offset, tok.Offset)
		assert.Equal(t, input[tok.Offset:tok.End()], tok.Text)
		offset = tok.End()
	}
	assert.Equal(t, len(input), offset)
}

func TestLexerWhitespaceSpansLines(t *testing.T) {
	t.Parallel()

	tokens := NewLexer("a;\n    b;").Tokenize()
	require.Len(t, tokens, 5)
	assert.Equal(t, Token{Kind: KindWhitespace, Text: "\n    ", Offset: 3}, tokens[2])
}
