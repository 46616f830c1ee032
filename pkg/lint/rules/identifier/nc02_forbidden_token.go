package identifier

import (
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
)

func init() {
	lint.Register(ForbiddenToken)
}

// ForbiddenToken flags abbreviations, noise words and single-letter names.
var ForbiddenToken = lint.RuleDef{
	ID:          "NC02",
	Name:        "identifier.forbidden-token",
	Group:       "identifier",
	Description: "Identifiers must not contain abbreviations or low-information words.",
	Severity:    lint.SeverityWarning,
	Categories:  append(core.IdentifierCategories(), core.FileCategories()...),
	Check:       checkForbiddenToken,
	Rationale: `Abbreviations (usr, btn, tmp) save a few keystrokes and cost every reader
a lookup. Noise words (data, info, stuff) carry no meaning at all.`,
	BadExample:  `const usrPrf = await fetchUserProfile(id);
const userData = response.json();`,
	GoodExample: `const userProfile = await fetchUserProfile(id);
const userOrders = response.json();`,
	Fix: "Spell out abbreviations. Replace noise words with what the value actually holds.",
}

func checkForbiddenToken(ctx *lint.CheckContext, ident core.Identifier, _ map[string]any) []lint.Diagnostic {
	v := ctx.Report.Forbidden
	if v == nil {
		return nil
	}
	return []lint.Diagnostic{lint.NewDiagnostic("NC02", lint.SeverityWarning, ident, v, lint.ImpactMedium)}
}
