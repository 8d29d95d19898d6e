package nolint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hdltools/vlin/internal/sv"
)

func TestParseComments(t *testing.T) {
	t.Parallel()

	t.Run("inline directive suppresses its own line", func(t *testing.T) {
		t.Parallel()
		code := "module m;\n" +
			"\twire a; //vlin:ignore\n" +
			"endmodule\n"
		mgr := ParseComments(sv.NewFile("test.sv", []byte(code)))

		assert.True(t, mgr.IsSuppressed(2, "mixed-indentation"))
		assert.True(t, mgr.IsSuppressed(2, "explicit-begin"))
		assert.False(t, mgr.IsSuppressed(1, "mixed-indentation"))
		assert.False(t, mgr.IsSuppressed(3, "mixed-indentation"))
	})

	t.Run("standalone directive also covers the next line", func(t *testing.T) {
		t.Parallel()
		code := "module m;\n" +
			"//vlin:ignore\n" +
			"\twire a;\n" +
			"endmodule\n"
		mgr := ParseComments(sv.NewFile("test.sv", []byte(code)))

		assert.True(t, mgr.IsSuppressed(2, "mixed-indentation"))
		assert.True(t, mgr.IsSuppressed(3, "mixed-indentation"))
		assert.False(t, mgr.IsSuppressed(4, "mixed-indentation"))
	})

	t.Run("rule list limits the scope", func(t *testing.T) {
		t.Parallel()
		code := "wire a; //vlin:ignore:mixed-indentation,macro-name-style\n"
		mgr := ParseComments(sv.NewFile("test.sv", []byte(code)))

		assert.True(t, mgr.IsSuppressed(1, "mixed-indentation"))
		assert.True(t, mgr.IsSuppressed(1, "macro-name-style"))
		assert.False(t, mgr.IsSuppressed(1, "explicit-begin"))
	})

	t.Run("trailing explanation is allowed", func(t *testing.T) {
		t.Parallel()
		code := "wire a; //vlin:ignore:explicit-begin legacy code\n"
		mgr := ParseComments(sv.NewFile("test.sv", []byte(code)))

		assert.True(t, mgr.IsSuppressed(1, "explicit-begin"))
		assert.False(t, mgr.IsSuppressed(1, "legacy"))
	})

	t.Run("ordinary comments are not directives", func(t *testing.T) {
		t.Parallel()
		code := "wire a; // vlin:ignore is documented here\n"
		mgr := ParseComments(sv.NewFile("test.sv", []byte(code)))

		assert.False(t, mgr.IsSuppressed(1, "mixed-indentation"))
	})

	t.Run("directive inside a string is not a comment", func(t *testing.T) {
		t.Parallel()
		code := "initial $display(\"//vlin:ignore\");\n"
		mgr := ParseComments(sv.NewFile("test.sv", []byte(code)))

		assert.False(t, mgr.IsSuppressed(1, "mixed-indentation"))
	})
}
