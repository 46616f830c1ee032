package lint

import (
	"fmt"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

// Severity aliases keep rule definitions short.
type Severity = core.Severity

// Severity levels for diagnostics.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string          // Unique identifier, e.g., "NC01"
	Name        string          // Human-readable name, e.g., "identifier.casing"
	Group       string          // Group, e.g., "identifier", "file", "test"
	Description string          // Human-readable description
	Severity    core.Severity   // Default severity
	Categories  []core.Category // Categories this rule checks
	Check       CheckFunc       // The check function
	ConfigKeys  []string        // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes one identifier and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(ctx *CheckContext, ident core.Identifier, opts map[string]any) []Diagnostic

// CheckContext carries what a rule needs beyond the identifier itself.
// Report is computed once per identifier and shared by every rule.
type CheckContext struct {
	Checker *naming.Checker
	Report  naming.Report
}

// Catalog returns the catalog behind the checker.
func (c *CheckContext) Catalog() *naming.Catalog {
	return c.Checker.Catalog()
}

// =============================================================================
// Diagnostics
// =============================================================================

// Position is a 1-based location in a source file.
type Position struct {
	Line   int
	Column int
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID     string
	Severity   core.Severity
	Message    string
	Path       string
	Pos        Position
	EndPos     Position // Optional: end of the identifier
	Identifier string
	Category   core.Category
	Kind       naming.Kind // Violation kind the diagnostic was built from
	Reason     string      // Violation reason without the identifier prefix
	Suggestion string      // Optional: suggested replacement name

	// Remediation metadata
	DocumentationURL string // URL to rule documentation, e.g., "https://namelint.dev/docs/rules/nc01"
	ImpactScore      int    // 0-100
}

// NewDiagnostic builds a diagnostic for ident from a naming violation.
func NewDiagnostic(ruleID string, severity core.Severity, ident core.Identifier, v *naming.Violation, impact ImpactLevel) Diagnostic {
	return Diagnostic{
		RuleID:           ruleID,
		Severity:         severity,
		Message:          fmt.Sprintf("%s %q: %s", ident.Category, ident.Name, v.Reason),
		Path:             ident.Path,
		Pos:              Position{Line: ident.Line, Column: ident.Column},
		EndPos:           Position{Line: ident.EndLine, Column: ident.EndColumn},
		Identifier:       ident.Name,
		Category:         ident.Category,
		Kind:             v.Kind,
		Reason:           v.Reason,
		Suggestion:       v.Suggestion,
		DocumentationURL: BuildDocURL(ruleID),
		ImpactScore:      impact.Int(),
	}
}

// =============================================================================
// Rule Interfaces
// =============================================================================

// Rule is the base interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "NC01"
	ID() string

	// Name returns the human-readable name, e.g., "identifier.casing"
	Name() string

	// Group returns the group, e.g., "identifier", "file", "test"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// IdentifierRule checks identifiers of selected categories.
type IdentifierRule interface {
	Rule

	// Categories returns the categories the rule applies to.
	Categories() []core.Category

	// CheckIdentifier analyzes one identifier and returns diagnostics.
	CheckIdentifier(ctx *CheckContext, ident core.Identifier, opts map[string]any) []Diagnostic
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	info := core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}

	if ir, ok := r.(IdentifierRule); ok {
		info.Categories = ir.Categories()
	}

	return info
}

// =============================================================================
// Wrapped RuleDef
// =============================================================================

// wrappedRuleDef wraps a RuleDef to implement IdentifierRule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement IdentifierRule interface.
func WrapRuleDef(def RuleDef) IdentifierRule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *wrappedRuleDef) Categories() []core.Category    { return w.def.Categories }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) CheckIdentifier(ctx *CheckContext, ident core.Identifier, opts map[string]any) []Diagnostic {
	if w.def.Check == nil {
		return nil
	}
	return w.def.Check(ctx, ident, opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
