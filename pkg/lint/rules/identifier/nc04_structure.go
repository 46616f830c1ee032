package identifier

import (
	"slices"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

func init() {
	lint.Register(Structure)
}

// Structure checks the Action/HighContext/LowContext pattern of function-like
// names. Components, types and constants are only checked when listed in the
// enforce_structure option or in naming.enforce_structure.
var Structure = lint.RuleDef{
	ID:          "NC04",
	Name:        "identifier.structure",
	Group:       "identifier",
	Description: "Function-like identifiers must name an action and enough context.",
	Severity:    lint.SeverityWarning,
	Categories: []core.Category{
		core.CategoryFunction,
		core.CategoryEventHandler,
		core.CategoryHook,
		core.CategoryHelperFunction,
		core.CategoryMockObject,
		core.CategoryComponent,
		core.CategoryTypeOrInterface,
		core.CategoryConstant,
	},
	ConfigKeys: []string{"enforce_structure"},
	Check:      checkStructure,
	Rationale: `A name shaped as Action + HighContext + LowContext (getUserProfile,
handleUserProfileSubmit, useUserProfile) says what happens and to what, so
call sites read without jumping to the definition.`,
	BadExample: `function getProfile() {}
const handleSubmit = () => {};
function useAuth() {}`,
	GoodExample: `function getUserProfile() {}
const handleUserProfileSubmit = () => {};
function useAuthSession() {}`,
	Fix: "Add the missing slot named in the message.",
}

func checkStructure(ctx *lint.CheckContext, ident core.Identifier, opts map[string]any) []lint.Diagnostic {
	if ident.Derived {
		return nil
	}
	v := ctx.Report.Structure
	if v == nil && ctx.Report.Casing == nil {
		if slices.Contains(lint.GetCategoriesOption(opts, "enforce_structure"), ident.Category) {
			v = ctx.Checker.Structure(ident.Name, ident.Category)
		}
	}
	if v == nil || v.Kind != naming.KindMissingStructureSlot {
		return nil
	}
	return []lint.Diagnostic{lint.NewDiagnostic("NC04", lint.SeverityWarning, ident, v, lint.ImpactHigh)}
}
