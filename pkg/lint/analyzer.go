package lint

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

// Analyzer runs registered lint rules against identifiers.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	config  *Config
	checker *naming.Checker
}

// NewAnalyzer creates a new analyzer. A nil config enables every rule with
// default severities; a nil checker uses the default catalog.
func NewAnalyzer(config *Config, checker *naming.Checker) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if checker == nil {
		checker = naming.NewChecker(nil)
	}
	return &Analyzer{config: config, checker: checker}
}

// Checker returns the checker used by the analyzer.
func (a *Analyzer) Checker() *naming.Checker {
	return a.checker
}

// Analyze evaluates one identifier and runs every enabled rule covering its
// category. An identifier with an unregistered category is a caller defect:
// Analyze returns an error wrapping naming.ErrUnknownCategory.
func (a *Analyzer) Analyze(ident core.Identifier) ([]Diagnostic, error) {
	report := a.checker.Evaluate(ident.Name, ident.Category, ident.IsBoolean)
	if report.Unknown != nil {
		return nil, fmt.Errorf("%s:%d: %w", ident.Path, ident.Line, report.Unknown)
	}

	ctx := &CheckContext{Checker: a.checker, Report: report}

	var diagnostics []Diagnostic
	for _, rule := range IdentifierRules() {
		// Skip disabled rules
		if a.config.IsDisabled(rule.ID()) {
			continue
		}
		if !slices.Contains(rule.Categories(), ident.Category) {
			continue
		}

		opts := a.config.GetRuleOptions(rule.ID())
		diags := rule.CheckIdentifier(ctx, ident, opts)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID(), diags[i].Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics, nil
}

// AnalyzeAll runs analysis on every identifier and stops at the first
// unknown category.
func (a *Analyzer) AnalyzeAll(idents []core.Identifier) ([]Diagnostic, error) {
	var diagnostics []Diagnostic
	for _, ident := range idents {
		diags, err := a.Analyze(ident)
		if err != nil {
			return nil, err
		}
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics, nil
}
