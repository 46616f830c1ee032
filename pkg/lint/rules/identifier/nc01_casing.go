package identifier

import (
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
)

func init() {
	lint.Register(Casing)
}

// Casing checks that identifiers follow their category's case convention.
var Casing = lint.RuleDef{
	ID:          "NC01",
	Name:        "identifier.casing",
	Group:       "identifier",
	Description: "Identifiers must follow the casing convention of their category.",
	Severity:    lint.SeverityError,
	Categories:  core.IdentifierCategories(),
	Check:       checkCasing,
	Rationale: `Casing tells the reader what kind of symbol a name refers to before they
look it up: PascalCase for components and types, camelCase for values and
functions, SCREAMING_SNAKE_CASE for module constants.`,
	BadExample: `const user_profile = getUser();
function userCard() { return <div />; }`,
	GoodExample: `const userProfile = getUser();
function UserCard() { return <div />; }`,
	Fix: "Rename the identifier using the suggested spelling.",
}

func checkCasing(ctx *lint.CheckContext, ident core.Identifier, _ map[string]any) []lint.Diagnostic {
	v := ctx.Report.Casing
	if v == nil {
		return nil
	}
	return []lint.Diagnostic{lint.NewDiagnostic("NC01", lint.SeverityError, ident, v, lint.ImpactLow)}
}
