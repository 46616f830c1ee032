package testcase

import (
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

func init() {
	lint.Register(Description)
}

// Description checks it()/test() descriptions.
var Description = lint.RuleDef{
	ID:          "TS01",
	Name:        "test.description",
	Group:       "test",
	Description: "Test descriptions read as: should <behavior> when <condition>.",
	Severity:    lint.SeverityInfo,
	Categories:  []core.Category{core.CategoryTestCase},
	ConfigKeys:  []string{"require_condition"},
	Check:       checkDescription,
	Rationale: `A description with a behavior and a condition doubles as a failure
message: the reader learns what broke and under which circumstances.`,
	BadExample: `it('works', () => {});
it('validation', () => {});`,
	GoodExample: `it('should show error message when email is invalid', () => {});`,
	Fix: `Set require_condition: false to accept "should <behavior>" alone.`,
}

func checkDescription(ctx *lint.CheckContext, ident core.Identifier, opts map[string]any) []lint.Diagnostic {
	v := ctx.Report.Structure
	if v == nil {
		return nil
	}
	if !lint.GetBoolOption(opts, "require_condition", true) {
		if v.Slot == "when" || v.Slot == naming.SlotCondition {
			return nil
		}
	}
	return []lint.Diagnostic{lint.NewDiagnostic("TS01", lint.SeverityInfo, ident, v, lint.ImpactLow)}
}
