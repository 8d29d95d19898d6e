package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdltools/vlin/internal/sv"
	tt "github.com/hdltools/vlin/internal/types"
)

func TestDetectMacroNameStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name:     "upper snake case passes",
			code:     "`define DATA_WIDTH 32\n",
			expected: 0,
		},
		{
			name:     "lower case name flagged",
			code:     "`define data_width 32\n",
			expected: 1,
		},
		{
			name:     "camel case name flagged",
			code:     "`define DataWidth 32\n",
			expected: 1,
		},
		{
			name:     "uvm lower snake case passes",
			code:     "`define uvm_field_int(x) x\n",
			expected: 0,
		},
		{
			name:     "uvm mixed case flagged",
			code:     "`define uvm_FieldInt(x) x\n",
			expected: 1,
		},
		{
			name:     "UVM upper snake case passes",
			code:     "`define UVM_DEFAULT_TIMEOUT 100\n",
			expected: 0,
		},
		{
			name:     "macro usage is not a definition",
			code:     "`include \"defs.svh\"\n`MY_macro(1)\n",
			expected: 0,
		},
		{
			name:     "comment between define and name",
			code:     "`define /* note */ bad_name 1\n",
			expected: 1,
		},
		{
			name:     "multiple definitions",
			code:     "`define GOOD_ONE 1\n`define badOne 2\n`define WORSE_one 3\n",
			expected: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			file := sv.NewFile("test.sv", []byte(tc.code))
			issues, err := DetectMacroNameStyle("test.sv", file, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
			for _, issue := range issues {
				assert.Equal(t, "macro-name-style", issue.Rule)
			}
		})
	}
}

func TestDetectMacroNameStylePosition(t *testing.T) {
	t.Parallel()

	file := sv.NewFile("test.sv", []byte("// header\n`define bad 1\n"))
	issues, err := DetectMacroNameStyle("test.sv", file, tt.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Start.Line)
	assert.Equal(t, 9, issues[0].Start.Column)
	assert.Equal(t, 12, issues[0].End.Column)
}
