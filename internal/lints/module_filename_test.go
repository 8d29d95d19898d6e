package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdltools/vlin/internal/sv"
	tt "github.com/hdltools/vlin/internal/types"
)

func TestDetectModuleFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		code     string
		expected int
	}{
		{
			name:     "matching name",
			filename: "fifo_ctrl.sv",
			code:     "module fifo_ctrl;\nendmodule\n",
			expected: 0,
		},
		{
			name:     "dash in filename matches underscore",
			filename: "fifo-ctrl.sv",
			code:     "module fifo_ctrl;\nendmodule\n",
			expected: 0,
		},
		{
			name:     "mismatching name",
			filename: "top.sv",
			code:     "module fifo_ctrl;\nendmodule\n",
			expected: 1,
		},
		{
			name:     "multiple modules are not checked",
			filename: "top.sv",
			code:     "module a;\nendmodule\nmodule b;\nendmodule\n",
			expected: 0,
		},
		{
			name:     "no module at all",
			filename: "defs.svh",
			code:     "`define WIDTH 8\n",
			expected: 0,
		},
		{
			name:     "module keyword inside comment is ignored",
			filename: "top.sv",
			code:     "// module fake\nmodule top;\nendmodule\n",
			expected: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			file := sv.NewFile(tc.filename, []byte(tc.code))
			issues, err := DetectModuleFilename(tc.filename, file, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expected)
			if tc.expected > 0 {
				assert.Equal(t, "module-filename", issues[0].Rule)
				assert.Contains(t, issues[0].Message, "fifo_ctrl")
			}
		})
	}
}
