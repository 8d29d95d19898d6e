package sv

import "fmt"

// TokenKind classifies a lexed span of SystemVerilog source.
type TokenKind int

const (
	// KindOther covers anything the lexer has no dedicated class for,
	// including offsets outside the file.
	KindOther TokenKind = iota
	KindWhitespace
	KindComment
	KindString
	KindIdent
	KindMacro
	KindNumber
	KindSymbol
)

func (k TokenKind) String() string {
	switch k {
	case KindWhitespace:
		return "whitespace"
	case KindComment:
		return "comment"
	case KindString:
		return "string"
	case KindIdent:
		return "ident"
	case KindMacro:
		return "macro"
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	default:
		return "other"
	}
}

// Token is a single lexed span. Offset is the byte offset of the first
// character in the original source.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

// End returns the byte offset just past the token's last character.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q@%d)", t.Kind, t.Text, t.Offset)
}
