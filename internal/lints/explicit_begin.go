package lints

import (
	"fmt"

	"github.com/hdltools/vlin/internal/sv"
	tt "github.com/hdltools/vlin/internal/types"
)

// DetectExplicitBegin checks that conditional and procedural constructs open
// their body with an explicit begin. It runs a small state machine over the
// token stream: after if/for/foreach/while the condition parentheses are
// consumed first, after else either an if chains or a begin must follow, and
// always blocks may carry an event control before the begin.
func DetectExplicitBegin(filename string, file *sv.File, severity tt.Severity) ([]tt.Issue, error) {
	m := beginMatcher{file: file, severity: severity}

	for _, tok := range file.Tokens() {
		switch tok.Kind {
		case sv.KindWhitespace, sv.KindComment:
			continue
		}
		// a raised violation resets the machine; the offending token may
		// itself start a new construct, so feed it again
		if m.handle(tok) {
			m.handle(tok)
		}
	}

	return m.issues, nil
}

type beginState int

const (
	beginNormal beginState = iota
	beginInCondition
	beginInAlways
	beginInElse
	beginExpect
	beginInConstraint
)

type beginMatcher struct {
	file     *sv.File
	severity tt.Severity
	issues   []tt.Issue

	state      beginState
	start      sv.Token
	parenLevel int
	seenParen  bool
	braceLevel int
	seenBrace  bool
}

// handle advances the state machine by one token and reports whether a
// violation was raised (the machine is back in the normal state afterwards).
func (m *beginMatcher) handle(tok sv.Token) bool {
	switch m.state {
	case beginNormal:
		m.handleNormal(tok)

	case beginInCondition:
		switch tok.Text {
		case "(":
			m.parenLevel++
			m.seenParen = true
		case ")":
			m.parenLevel--
			if m.seenParen && m.parenLevel == 0 {
				m.state = beginExpect
			}
		}
		// anything else inside or before the condition is irrelevant

	case beginInAlways:
		switch tok.Text {
		case "@", "*":
			// event control, keep waiting
		case "(":
			m.parenLevel = 1
			m.seenParen = true
			m.state = beginInCondition
		case "begin":
			m.reset()
		default:
			return m.raise()
		}

	case beginInElse:
		switch tok.Text {
		case "if":
			// else-if chain, track the new condition
			m.start = tok
			m.seenParen = false
			m.parenLevel = 0
			m.state = beginInCondition
		case "begin":
			m.reset()
		default:
			return m.raise()
		}

	case beginExpect:
		if tok.Text == "begin" {
			m.reset()
			return false
		}
		return m.raise()

	case beginInConstraint:
		// constraint bodies use braces, not begin/end; skip them wholesale
		switch tok.Text {
		case "{":
			m.braceLevel++
			m.seenBrace = true
		case "}":
			m.braceLevel--
			if m.seenBrace && m.braceLevel == 0 {
				m.reset()
			}
		case ";":
			if !m.seenBrace {
				m.reset() // extern constraint declaration
			}
		}
	}
	return false
}

func (m *beginMatcher) handleNormal(tok sv.Token) {
	if tok.Kind != sv.KindIdent {
		return
	}
	switch tok.Text {
	case "if", "for", "foreach", "while", "always_ff":
		m.start = tok
		m.seenParen = false
		m.parenLevel = 0
		m.state = beginInCondition
	case "always_comb", "always_latch", "forever", "initial":
		m.start = tok
		m.state = beginExpect
	case "always":
		m.start = tok
		m.parenLevel = 0
		m.state = beginInAlways
	case "else":
		m.start = tok
		m.state = beginInElse
	case "constraint":
		m.braceLevel = 0
		m.seenBrace = false
		m.state = beginInConstraint
	}
}

func (m *beginMatcher) raise() bool {
	m.issues = append(m.issues, tt.Issue{
		Rule:     "explicit-begin",
		Category: "style",
		Filename: m.file.Name(),
		Message:  fmt.Sprintf("%s block construct shall explicitly use begin/end", m.start.Text),
		Start:    m.file.PositionFor(m.start.Offset),
		End:      m.file.PositionFor(m.start.End()),
		Severity: m.severity,
	})
	m.reset()
	return true
}

func (m *beginMatcher) reset() {
	m.state = beginNormal
	m.parenLevel = 0
	m.seenParen = false
	m.braceLevel = 0
	m.seenBrace = false
}
