package identifier

import (
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
)

func init() {
	lint.Register(BooleanPrefix)
}

// BooleanPrefix checks that boolean values read as questions.
var BooleanPrefix = lint.RuleDef{
	ID:          "NC03",
	Name:        "identifier.boolean-prefix",
	Group:       "identifier",
	Description: "Boolean identifiers must start with is, has, can, should, will, was or are.",
	Severity:    lint.SeverityWarning,
	Categories:  []core.Category{core.CategoryVariable, core.CategoryBooleanVariable},
	Check:       checkBooleanPrefix,
	Rationale:   `A prefix makes conditions read as sentences: if (isLoading) rather than if (loading).`,
	BadExample: `const loading = true;
const [visible, setVisible] = useState(false);`,
	GoodExample: `const isLoading = true;
const [isVisible, setIsVisible] = useState(false);`,
}

func checkBooleanPrefix(ctx *lint.CheckContext, ident core.Identifier, _ map[string]any) []lint.Diagnostic {
	v := ctx.Report.BooleanPrefix
	if v == nil {
		return nil
	}
	return []lint.Diagnostic{lint.NewDiagnostic("NC03", lint.SeverityWarning, ident, v, lint.ImpactMedium)}
}
