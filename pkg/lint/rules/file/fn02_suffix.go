package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

func init() {
	lint.Register(Suffix)
}

// Suffix checks the suffix conventions for single-purpose modules.
var Suffix = lint.RuleDef{
	ID:          "FN02",
	Name:        "file.suffix",
	Group:       "file",
	Description: "Type-only modules end in .types.ts, constant-only modules in .constants.ts, service modules in -service.ts.",
	Severity:    lint.SeverityInfo,
	Categories:  []core.Category{core.CategoryModuleFile},
	Check:       checkFileSuffix,
	Rationale:   `A suffix tells importers what a module contains without opening it.`,
	BadExample: `src/user/user.ts          // only interfaces
src/user/limits.ts        // only constants
src/user/user-api.ts      // exports UserService`,
	GoodExample: `src/user/user.types.ts
src/user/limits.constants.ts
src/user/user-service.ts`,
}

func checkFileSuffix(_ *lint.CheckContext, ident core.Identifier, _ map[string]any) []lint.Diagnostic {
	facts := ident.File
	if facts.IsTest || facts.Declarations == 0 {
		return nil
	}

	base := filepath.Base(ident.Path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	var want, reason string
	switch {
	case facts.OnlyTypes && !strings.HasSuffix(stem, ".types"):
		want = ident.Name + ".types" + ext
		reason = "module declares only types; name it *.types" + ext
	case facts.OnlyConstants && !strings.HasSuffix(stem, ".constants"):
		want = ident.Name + ".constants" + ext
		reason = "module declares only constants; name it *.constants" + ext
	case facts.ServiceExport && !strings.HasSuffix(ident.Name, "-service"):
		want = ident.Name + "-service" + ext
		reason = "module exports a service; name it *-service" + ext
	default:
		return nil
	}

	v := &naming.Violation{
		Identifier: base,
		Category:   ident.Category,
		Kind:       naming.KindMissingStructureSlot,
		Slot:       "Suffix",
		Reason:     reason,
		Suggestion: want,
	}
	d := lint.NewDiagnostic("FN02", lint.SeverityInfo, ident, v, lint.ImpactLow)
	d.Message = fmt.Sprintf("file %q: %s", base, reason)
	return []lint.Diagnostic{d}
}

// fileSuffix returns everything after the first dot of the base name,
// including the dot: ".types.ts" for "userTypes.types.ts".
func fileSuffix(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[i:]
	}
	return ""
}
