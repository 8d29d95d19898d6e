package sv

import (
	"go/token"
	"sort"
	"strings"
)

// Line is a read-only view of one source line. Text excludes the line
// terminator; Start is the byte offset of the first character in the file.
type Line struct {
	Start int
	Text  string
}

// File is a lexed source file: the raw text, the token stream, and enough
// line bookkeeping to map byte offsets back to line/column positions.
// A File is immutable after construction and safe for concurrent reads.
type File struct {
	name       string
	src        string
	tokens     []Token
	lineStarts []int
}

// NewFile lexes src and builds the line table.
func NewFile(name string, src []byte) *File {
	text := string(src)
	f := &File{
		name:       name,
		src:        text,
		tokens:     NewLexer(text).Tokenize(),
		lineStarts: []int{0},
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

func (f *File) Name() string { return f.name }

// Src returns the raw file content.
func (f *File) Src() string { return f.src }

// Tokens returns the token stream in source order.
func (f *File) Tokens() []Token { return f.tokens }

// Lines splits the file into line views. Terminators (\n, \r\n) are excluded
// from the line text but accounted for in the offsets.
func (f *File) Lines() []Line {
	lines := make([]Line, 0, len(f.lineStarts))
	for i, start := range f.lineStarts {
		end := len(f.src)
		if i+1 < len(f.lineStarts) {
			end = f.lineStarts[i+1] - 1 // drop '\n'
		}
		text := f.src[start:end]
		text = strings.TrimSuffix(text, "\r")
		lines = append(lines, Line{Start: start, Text: text})
	}
	// a trailing newline yields a phantom empty last line; keep it,
	// empty lines are skipped by every rule anyway
	return lines
}

// PositionFor maps a byte offset to a 1-based line/column position.
func (f *File) PositionFor(offset int) token.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.src) {
		offset = len(f.src)
	}
	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})
	return token.Position{
		Filename: f.name,
		Offset:   offset,
		Line:     line,
		Column:   offset - f.lineStarts[line-1] + 1,
	}
}

// ClassifyAt returns the kind of the token covering the given byte offset.
// Offsets outside the file classify as KindOther.
func (f *File) ClassifyAt(offset int) TokenKind {
	if tok, ok := f.TokenAt(offset); ok {
		return tok.Kind
	}
	return KindOther
}

// TokenAt returns the token covering the given byte offset.
func (f *File) TokenAt(offset int) (Token, bool) {
	if offset < 0 || offset >= len(f.src) {
		return Token{}, false
	}
	i := sort.Search(len(f.tokens), func(i int) bool {
		return f.tokens[i].End() > offset
	})
	if i == len(f.tokens) || f.tokens[i].Offset > offset {
		return Token{}, false
	}
	return f.tokens[i], true
}

// PlainWhitespaceAt reports whether the byte at offset belongs to a genuine
// inter-token whitespace span, as opposed to whitespace-looking characters
// inside a comment or string literal. This is the single classification
// predicate shared by the leading-indent checks and the body scans, so the
// two can never disagree.
func (f *File) PlainWhitespaceAt(offset int) bool {
	return f.ClassifyAt(offset) == KindWhitespace
}
