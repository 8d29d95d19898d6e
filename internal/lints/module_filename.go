package lints

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hdltools/vlin/internal/sv"
	tt "github.com/hdltools/vlin/internal/types"
)

// DetectModuleFilename checks that a file declaring exactly one module names
// that module after the file. Dashes in the filename are accepted in place of
// underscores in the module name. Files with zero or multiple module
// declarations are left alone.
func DetectModuleFilename(filename string, file *sv.File, severity tt.Severity) ([]tt.Issue, error) {
	if filename == "" {
		return nil, nil
	}

	names := moduleDeclarations(file)
	if len(names) != 1 {
		return nil, nil
	}
	name := names[0]

	stem := filepath.Base(filename)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))

	unitName := strings.ReplaceAll(name.Text, "_", "-")
	fileStem := strings.ReplaceAll(stem, "_", "-")
	if unitName == fileStem {
		return nil, nil
	}

	return []tt.Issue{{
		Rule:     "module-filename",
		Category: "style",
		Filename: file.Name(),
		Message:  fmt.Sprintf("module %q does not match the file name %q", name.Text, stem),
		Start:    file.PositionFor(name.Offset),
		End:      file.PositionFor(name.End()),
		Severity: severity,
	}}, nil
}

// moduleDeclarations returns the name tokens of all top-level module
// declarations, i.e. every identifier directly following the module keyword.
func moduleDeclarations(file *sv.File) []sv.Token {
	var names []sv.Token
	tokens := file.Tokens()
	for i, tok := range tokens {
		if tok.Kind != sv.KindIdent || tok.Text != "module" {
			continue
		}
		if name, ok := nextCodeToken(tokens, i+1); ok && name.Kind == sv.KindIdent {
			names = append(names, name)
		}
	}
	return names
}
