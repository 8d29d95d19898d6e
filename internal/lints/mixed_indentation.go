package lints

import (
	"fmt"
	"strings"

	"github.com/hdltools/vlin/internal/sv"
	tt "github.com/hdltools/vlin/internal/types"
)

const (
	// histogram of leading-space deltas; bin 0 exists but never wins argmax
	numHistogramBins   = 5
	defaultIndentWidth = 2
)

// DetectMixedIndentation infers the file's dominant indentation style from
// the file itself and reports every line that deviates from it. The rule is
// two-pass: the whole file is profiled before any line is judged, because the
// width inference needs global evidence.
func DetectMixedIndentation(filename string, file *sv.File, severity tt.Severity) ([]tt.Issue, error) {
	profile := profileIndentation(file)

	v := indentValidator{
		file:     file,
		profile:  profile,
		severity: severity,
		sink:     newIssueSink(),
	}
	for _, line := range file.Lines() {
		v.checkLine(line)
	}

	return v.sink.issues, nil
}

// indentProfile is the inferred indentation convention of one file.
// It is immutable once profileIndentation returns.
type indentProfile struct {
	useSpaces bool
	width     int
}

// profileIndentation scans every line once and decides (a) whether the file
// indents with spaces or tabs (majority vote over indentation-bearing lines,
// ties favor spaces) and (b) for space indentation, the most likely indent
// width, taken from a histogram of deltas between consecutive leading-space
// counts. It never fails: with no evidence at all the profile defaults to
// two-space indentation.
func profileIndentation(file *sv.File) indentProfile {
	var (
		linesWithSpaces int
		linesWithTabs   int
		histogram       [numHistogramBins]int
		lastSpaceWidth  int
		lastDelta       int
	)

	for _, line := range file.Lines() {
		if len(line.Text) == 0 {
			continue
		}

		pos := firstNonIndentChar(line.Text)
		if pos <= 0 {
			// no leading indentation, or the line is all whitespace;
			// neither carries a reliable signal
			continue
		}

		// only genuine whitespace counts as evidence; a line starting
		// mid-comment or mid-string merely looks indented
		if !file.PlainWhitespaceAt(line.Start) {
			continue
		}

		leading := line.Text[:pos]
		switch leading[0] {
		case ' ':
			linesWithSpaces++
			if strings.IndexByte(leading, '\t') >= 0 {
				continue // mixed leading span, no width evidence
			}
			delta := len(leading) - lastSpaceWidth
			if delta < 0 {
				delta = -delta
			}
			if delta < numHistogramBins {
				// a delta of 0 means "same indent as before"; fold it
				// into the last nonzero delta so flat stretches do not
				// drown out the real indent step
				if delta == 0 {
					histogram[lastDelta]++
				} else {
					histogram[delta]++
					lastDelta = delta
				}
				lastSpaceWidth = len(leading)
			}
		case '\t':
			linesWithTabs++
		}
	}

	profile := indentProfile{
		useSpaces: linesWithSpaces >= linesWithTabs,
		width:     defaultIndentWidth,
	}
	if profile.useSpaces {
		best := 0
		for i := 1; i < numHistogramBins; i++ {
			if histogram[i] > best {
				best = histogram[i]
				profile.width = i
			}
		}
	}
	return profile
}

// indentValidator re-scans the file line by line against the inferred
// profile. It holds no cross-line state beyond the profile itself.
type indentValidator struct {
	file     *sv.File
	profile  indentProfile
	severity tt.Severity
	sink     *issueSink
}

func (v *indentValidator) checkLine(line sv.Line) {
	if len(line.Text) == 0 {
		return
	}

	body := line.Text
	bodyStart := line.Start

	pos := firstNonIndentChar(body)
	if pos < 0 {
		// all-whitespace line; carries no signal, same as in the profiler
		return
	}
	if pos > 0 {
		leading := body[:pos]
		// skip purity and width checks when the span is not a plain
		// whitespace token (comment or string continuation); do not guess
		if v.file.PlainWhitespaceAt(line.Start) {
			if v.checkPurity(leading, line.Start) && v.profile.useSpaces {
				v.checkWidth(leading, line.Start)
			}
		}
		body = body[pos:]
		bodyStart += pos
	}

	v.checkBody(body, bodyStart)
}

// checkPurity reports a violation when the leading span mixes the
// non-dominant whitespace character. Returns true when the span is pure.
func (v *indentValidator) checkPurity(span string, offset int) bool {
	want := byte('\t')
	if v.profile.useSpaces {
		want = ' '
	}
	for i := 0; i < len(span); i++ {
		if span[i] != want {
			v.report(offset, len(span), v.mixedMessage())
			return false
		}
	}
	return true
}

// checkWidth reports a violation when a pure space indent is not a multiple
// of the inferred width.
func (v *indentValidator) checkWidth(span string, offset int) {
	if len(span)%v.profile.width != 0 {
		v.report(offset, len(span),
			fmt.Sprintf("incorrect number of spaces used for indentation; expected indent style: %d spaces", v.profile.width))
	}
}

// checkBody scans the remainder of a line for embedded runs of the
// non-dominant whitespace character. Runs inside comments or string literals
// are skipped via the shared whitespace predicate.
func (v *indentValidator) checkBody(body string, start int) {
	if v.profile.useSpaces {
		// any embedded tab run is a violation
		pos := 0
		for pos < len(body) {
			i := strings.IndexByte(body[pos:], '\t')
			if i < 0 {
				return
			}
			runStart := pos + i
			runEnd := runStart
			for runEnd < len(body) && body[runEnd] == '\t' {
				runEnd++
			}
			if v.file.PlainWhitespaceAt(start + runStart) {
				v.report(start+runStart, runEnd-runStart, v.mixedMessage())
			}
			pos = runEnd
		}
		return
	}

	// tabs dominant: a single alignment space after a tab is tolerated,
	// but any longer whitespace run containing a space is not
	pos := 0
	for pos < len(body) {
		i := strings.IndexAny(body[pos:], " \t")
		if i < 0 {
			return
		}
		runStart := pos + i
		runEnd := runStart
		for runEnd < len(body) && (body[runEnd] == ' ' || body[runEnd] == '\t') {
			runEnd++
		}
		run := body[runStart:runEnd]
		if len(run) > 1 && strings.IndexByte(run, ' ') >= 0 &&
			v.file.PlainWhitespaceAt(start+runStart) {
			v.report(start+runStart, len(run), v.mixedMessage())
		}
		pos = runEnd
	}
}

func (v *indentValidator) mixedMessage() string {
	if v.profile.useSpaces {
		return fmt.Sprintf("mixed indentation using tabs and spaces; expected indent style: %d spaces", v.profile.width)
	}
	return "mixed indentation using tabs and spaces; expected indent style: tabs"
}

func (v *indentValidator) report(offset, length int, message string) {
	v.sink.add(v.file, offset, length, message, v.severity)
}

// firstNonIndentChar returns the index of the first character that is neither
// a space nor a tab, -1 if the whole line is indentation characters.
func firstNonIndentChar(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return -1
}

// issueSink collects violations in insertion order, collapsing duplicates by
// (offset, message). It is local to one rule invocation; there is no shared
// state across files.
type issueSink struct {
	seen   map[sinkKey]struct{}
	issues []tt.Issue
}

type sinkKey struct {
	offset  int
	message string
}

func newIssueSink() *issueSink {
	return &issueSink{seen: make(map[sinkKey]struct{})}
}

func (s *issueSink) add(file *sv.File, offset, length int, message string, severity tt.Severity) {
	key := sinkKey{offset: offset, message: message}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.issues = append(s.issues, tt.Issue{
		Rule:     "mixed-indentation",
		Category: "style",
		Filename: file.Name(),
		Message:  message,
		Start:    file.PositionFor(offset),
		End:      file.PositionFor(offset + length),
		Severity: severity,
	})
}
