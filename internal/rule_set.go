package internal

import (
	"github.com/hdltools/vlin/internal/lints"
	"github.com/hdltools/vlin/internal/sv"
	tt "github.com/hdltools/vlin/internal/types"
)

/*
* Implement each lint rule as a separate struct
 */

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the lexed file and returns a slice of Issues.
	Check(filename string, file *sv.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

type MixedIndentationRule struct {
	severity tt.Severity
}

func NewMixedIndentationRule() LintRule {
	return &MixedIndentationRule{severity: tt.SeverityError}
}

func (r *MixedIndentationRule) Check(filename string, file *sv.File) ([]tt.Issue, error) {
	return lints.DetectMixedIndentation(filename, file, r.severity)
}

func (r *MixedIndentationRule) Name() string {
	return "mixed-indentation"
}

func (r *MixedIndentationRule) Severity() tt.Severity     { return r.severity }
func (r *MixedIndentationRule) SetSeverity(s tt.Severity) { r.severity = s }

type MacroNameStyleRule struct {
	severity tt.Severity
}

func NewMacroNameStyleRule() LintRule {
	return &MacroNameStyleRule{severity: tt.SeverityWarning}
}

func (r *MacroNameStyleRule) Check(filename string, file *sv.File) ([]tt.Issue, error) {
	return lints.DetectMacroNameStyle(filename, file, r.severity)
}

func (r *MacroNameStyleRule) Name() string {
	return "macro-name-style"
}

func (r *MacroNameStyleRule) Severity() tt.Severity     { return r.severity }
func (r *MacroNameStyleRule) SetSeverity(s tt.Severity) { r.severity = s }

type ModuleFilenameRule struct {
	severity tt.Severity
}

func NewModuleFilenameRule() LintRule {
	return &ModuleFilenameRule{severity: tt.SeverityWarning}
}

func (r *ModuleFilenameRule) Check(filename string, file *sv.File) ([]tt.Issue, error) {
	return lints.DetectModuleFilename(filename, file, r.severity)
}

func (r *ModuleFilenameRule) Name() string {
	return "module-filename"
}

func (r *ModuleFilenameRule) Severity() tt.Severity     { return r.severity }
func (r *ModuleFilenameRule) SetSeverity(s tt.Severity) { r.severity = s }

type ExplicitBeginRule struct {
	severity tt.Severity
}

func NewExplicitBeginRule() LintRule {
	return &ExplicitBeginRule{severity: tt.SeverityWarning}
}

func (r *ExplicitBeginRule) Check(filename string, file *sv.File) ([]tt.Issue, error) {
	return lints.DetectExplicitBegin(filename, file, r.severity)
}

func (r *ExplicitBeginRule) Name() string {
	return "explicit-begin"
}

func (r *ExplicitBeginRule) Severity() tt.Severity     { return r.severity }
func (r *ExplicitBeginRule) SetSeverity(s tt.Severity) { r.severity = s }
