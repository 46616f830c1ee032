package file

import (
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
)

func init() {
	lint.Register(Casing)
}

// Casing checks that utility, service and test files are kebab-case.
var Casing = lint.RuleDef{
	ID:          "FN01",
	Name:        "file.casing",
	Group:       "file",
	Description: "Utility, service and test file names must be kebab-case.",
	Severity:    lint.SeverityWarning,
	Categories:  core.FileCategories(),
	Check:       checkFileCasing,
	Rationale: `kebab-case file names behave the same on case-sensitive and
case-insensitive file systems. Component files are the exception and use
the component's PascalCase name.`,
	BadExample:  `src/utils/formatCurrency.ts
src/services/UserService.ts`,
	GoodExample: `src/utils/format-currency.ts
src/services/user-service.ts`,
}

func checkFileCasing(ctx *lint.CheckContext, ident core.Identifier, _ map[string]any) []lint.Diagnostic {
	v := ctx.Report.Casing
	if v == nil {
		return nil
	}
	d := lint.NewDiagnostic("FN01", lint.SeverityWarning, ident, v, lint.ImpactLow)
	if v.Suggestion != "" {
		d.Suggestion = v.Suggestion + fileSuffix(ident.Path)
	}
	return []lint.Diagnostic{d}
}
