package formatter

import (
	"go/token"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/hdltools/vlin/internal"
	tt "github.com/hdltools/vlin/internal/types"
)

func init() {
	// keep expected strings free of escape codes
	color.NoColor = true
}

func TestGenerateFormattedIssue(t *testing.T) {
	t.Parallel()

	code := &internal.SourceCode{
		Lines: []string{
			"module m;",
			"\twire a;",
			"endmodule",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     "mixed-indentation",
			Filename: "test.sv",
			Start:    token.Position{Line: 2, Column: 1},
			End:      token.Position{Line: 2, Column: 2},
			Message:  "mixed indentation using tabs and spaces; expected indent style: 4 spaces",
			Severity: tt.SeverityError,
		},
	}

	expected := `error: mixed-indentation
 --> test.sv:2:1
  |
2 | wire a;
  | ~
  = mixed indentation using tabs and spaces; expected indent style: 4 spaces

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestGenerateFormattedIssueWithNote(t *testing.T) {
	t.Parallel()

	code := &internal.SourceCode{
		Lines: []string{
			"initial x = 0;",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     "explicit-begin",
			Filename: "test.sv",
			Start:    token.Position{Line: 1, Column: 1},
			End:      token.Position{Line: 1, Column: 8},
			Message:  "initial block construct shall explicitly use begin/end",
			Note:     "wrap the body in begin/end",
			Severity: tt.SeverityWarning,
		},
	}

	expected := `warning: explicit-begin
 --> test.sv:1:1
  |
1 | initial x = 0;
  | ~~~~~~~
  = initial block construct shall explicitly use begin/end

Note: wrap the body in begin/end

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestGenerateFormattedIssueModuleFilename(t *testing.T) {
	t.Parallel()

	code := &internal.SourceCode{
		Lines: []string{
			"module not_top;",
			"endmodule",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     "module-filename",
			Filename: "top.sv",
			Start:    token.Position{Line: 1, Column: 8},
			End:      token.Position{Line: 1, Column: 15},
			Message:  `module "not_top" does not match the file name "top"`,
			Severity: tt.SeverityWarning,
		},
	}

	expected := `warning: module-filename
 --> top.sv:1:8
  = module "not_top" does not match the file name "top"

`

	result := GenerateFormattedIssue(issues, code)
	assert.Equal(t, expected, result)
}

func TestFindCommonIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "shared space indent",
			lines:    []string{"    a;", "    b;"},
			expected: "    ",
		},
		{
			name:     "mixed depth keeps the shallow prefix",
			lines:    []string{"    a;", "        b;"},
			expected: "    ",
		},
		{
			name:     "tab and space do not share a prefix",
			lines:    []string{"\ta;", "    b;"},
			expected: "",
		},
		{
			name:     "empty lines are skipped",
			lines:    []string{"", "  a;", "", "  b;"},
			expected: "  ",
		},
		{
			name:     "no lines",
			lines:    nil,
			expected: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, findCommonIndent(tc.lines))
		})
	}
}
