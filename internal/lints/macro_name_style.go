package lints

import (
	"regexp"
	"strings"

	"github.com/hdltools/vlin/internal/sv"
	tt "github.com/hdltools/vlin/internal/types"
)

var (
	lowerSnakeCase = regexp.MustCompile(`^[a-z_0-9]+$`)
	upperSnakeCase = regexp.MustCompile(`^[A-Z_0-9]+$`)
)

// DetectMacroNameStyle checks that `define names follow UPPER_SNAKE_CASE.
// UVM-style macros are the exception: names beginning with uvm_ must be
// lower_snake_case and names beginning with UVM_ must be UPPER_SNAKE_CASE.
func DetectMacroNameStyle(filename string, file *sv.File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	tokens := file.Tokens()
	for i, tok := range tokens {
		if tok.Kind != sv.KindMacro || tok.Text != "`define" {
			continue
		}
		name, ok := nextCodeToken(tokens, i+1)
		if !ok || name.Kind != sv.KindIdent {
			continue
		}

		var message string
		switch {
		case strings.HasPrefix(name.Text, "uvm_"):
			if !lowerSnakeCase.MatchString(name.Text) {
				message = "'uvm_*' named macros must follow 'lower_snake_case' format"
			}
		case strings.HasPrefix(name.Text, "UVM_"):
			if !upperSnakeCase.MatchString(name.Text) {
				message = "'UVM_*' named macros must follow 'UPPER_SNAKE_CASE' format"
			}
		default:
			if !upperSnakeCase.MatchString(name.Text) {
				message = "macro name does not match the naming convention UPPER_SNAKE_CASE"
			}
		}
		if message == "" {
			continue
		}

		issues = append(issues, tt.Issue{
			Rule:     "macro-name-style",
			Category: "style",
			Filename: file.Name(),
			Message:  message,
			Start:    file.PositionFor(name.Offset),
			End:      file.PositionFor(name.End()),
			Severity: severity,
		})
	}

	return issues, nil
}

// nextCodeToken returns the first token at or after index i that is neither
// whitespace nor a comment.
func nextCodeToken(tokens []sv.Token, i int) (sv.Token, bool) {
	for ; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case sv.KindWhitespace, sv.KindComment:
			continue
		default:
			return tokens[i], true
		}
	}
	return sv.Token{}, false
}
