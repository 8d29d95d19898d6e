package sv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLines(t *testing.T) {
	t.Parallel()

	file := NewFile("test.sv", []byte("module m;\n  wire a;\r\nendmodule"))
	lines := file.Lines()

	require.Len(t, lines, 3)
	assert.Equal(t, Line{Start: 0, Text: "module m;"}, lines[0])
	assert.Equal(t, Line{Start: 10, Text: "  wire a;"}, lines[1])
	assert.Equal(t, Line{Start: 21, Text: "endmodule"}, lines[2])
}

func TestFileLinesTrailingNewline(t *testing.T) {
	t.Parallel()

	file := NewFile("test.sv", []byte("a;\n"))
	lines := file.Lines()

	require.Len(t, lines, 2)
	assert.Equal(t, "a;", lines[0].Text)
	assert.Equal(t, "", lines[1].Text)
}

func TestFilePositionFor(t *testing.T) {
	t.Parallel()

	file := NewFile("test.sv", []byte("abc\ndef\nghi\n"))

	pos := file.PositionFor(0)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 1, pos.Column)
	assert.Equal(t, "test.sv", pos.Filename)

	pos = file.PositionFor(5)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 2, pos.Column)

	pos = file.PositionFor(8)
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 1, pos.Column)

	// clamped to the file bounds
	pos = file.PositionFor(-5)
	assert.Equal(t, 1, pos.Line)
	pos = file.PositionFor(1000)
	assert.Equal(t, 12, pos.Offset)
}

func TestFileClassifyAt(t *testing.T) {
	t.Parallel()

	//          0         1         2
	//          0123456789012345678901234567
	src := `a; // note` + "\n" + `b = "x y";` + "\n"
	file := NewFile("test.sv", []byte(src))

	assert.Equal(t, KindIdent, file.ClassifyAt(0))
	assert.Equal(t, KindSymbol, file.ClassifyAt(1))
	assert.Equal(t, KindWhitespace, file.ClassifyAt(2))
	assert.Equal(t, KindComment, file.ClassifyAt(3))
	assert.Equal(t, KindComment, file.ClassifyAt(5))     // space inside the comment
	assert.Equal(t, KindComment, file.ClassifyAt(9))     // last comment character
	assert.Equal(t, KindWhitespace, file.ClassifyAt(10)) // the newline
	assert.Equal(t, KindString, file.ClassifyAt(17))     // space inside the string

	// out of range never panics
	assert.Equal(t, KindOther, file.ClassifyAt(-1))
	assert.Equal(t, KindOther, file.ClassifyAt(len(src)))
}

func TestFilePlainWhitespaceAt(t *testing.T) {
	t.Parallel()

	src := "  a; /* x  y */ \"p q\"\n"
	file := NewFile("test.sv", []byte(src))

	assert.True(t, file.PlainWhitespaceAt(0))   // leading indent
	assert.True(t, file.PlainWhitespaceAt(4))   // gap before comment
	assert.False(t, file.PlainWhitespaceAt(9))  // inside comment
	assert.False(t, file.PlainWhitespaceAt(18)) // inside string
	assert.False(t, file.PlainWhitespaceAt(2))  // identifier
	assert.False(t, file.PlainWhitespaceAt(-1))
	assert.False(t, file.PlainWhitespaceAt(9999))
}

func TestFileTokenAt(t *testing.T) {
	t.Parallel()

	file := NewFile("test.sv", []byte("wire abc;"))

	tok, ok := file.TokenAt(6)
	require.True(t, ok)
	assert.Equal(t, "abc", tok.Text)
	assert.Equal(t, 5, tok.Offset)

	_, ok = file.TokenAt(99)
	assert.False(t, ok)
}
