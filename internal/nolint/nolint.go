package nolint

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/hdltools/vlin/internal/sv"
)

const nolintPrefix = "//vlin:ignore"

// Manager tracks suppression comments and answers whether an issue on a given
// line is suppressed.
type Manager struct {
	// scopes maps a line number to the set of suppressed rules on that line.
	// A nil set suppresses every rule.
	scopes map[int]map[string]struct{}
}

// ParseComments scans the file's comment tokens for suppression directives.
// An inline comment suppresses its own line; a standalone comment (nothing
// but whitespace before it) suppresses its own line and the next one.
func ParseComments(file *sv.File) *Manager {
	manager := Manager{scopes: make(map[int]map[string]struct{})}
	lines := file.Lines()

	for _, tok := range file.Tokens() {
		if tok.Kind != sv.KindComment {
			continue
		}
		rules, err := parseDirective(tok.Text)
		if err != nil {
			// ignore malformed directives
			continue
		}

		pos := file.PositionFor(tok.Offset)
		manager.addScope(pos.Line, rules)

		if isStandalone(lines, pos) {
			manager.addScope(pos.Line+1, rules)
		}
	}
	return &manager
}

// IsSuppressed reports whether the given rule is suppressed on the line.
func (m *Manager) IsSuppressed(line int, rule string) bool {
	rules, ok := m.scopes[line]
	if !ok {
		return false
	}
	if rules == nil {
		return true
	}
	_, ok = rules[rule]
	return ok
}

func (m *Manager) addScope(line int, rules map[string]struct{}) {
	existing, ok := m.scopes[line]
	if !ok {
		m.scopes[line] = rules
		return
	}
	// nil (all rules) absorbs any rule list
	if existing == nil || rules == nil {
		m.scopes[line] = nil
		return
	}
	for rule := range rules {
		existing[rule] = struct{}{}
	}
}

// parseDirective parses a comment into a suppressed-rule set. A directive is
// either bare (`//vlin:ignore`, all rules) or carries a rule list after a
// colon (`//vlin:ignore:rule1,rule2`).
func parseDirective(text string) (map[string]struct{}, error) {
	if !strings.HasPrefix(text, nolintPrefix) {
		return nil, fmt.Errorf("not a suppression directive")
	}

	rest := text[len(nolintPrefix):]
	if rest == "" || strings.HasPrefix(rest, " ") {
		return nil, nil // bare directive: all rules
	}
	if rest[0] != ':' {
		return nil, fmt.Errorf("invalid suppression directive format")
	}

	rest = strings.TrimPrefix(rest, ":")
	// a trailing free-form explanation is allowed after the rule list
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return nil, fmt.Errorf("no rules specified after colon")
	}

	rules := make(map[string]struct{})
	for _, rule := range strings.Split(rest, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules, nil
}

// isStandalone reports whether the comment at pos has nothing but whitespace
// before it on its line.
func isStandalone(lines []sv.Line, pos token.Position) bool {
	if pos.Line-1 < 0 || pos.Line-1 >= len(lines) {
		return false
	}
	prefix := lines[pos.Line-1].Text
	if pos.Column-1 < len(prefix) {
		prefix = prefix[:pos.Column-1]
	}
	return strings.TrimSpace(prefix) == ""
}
