//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/namelint"

// loadModule loads packages matching patterns or fails the test.
func loadModule(t *testing.T, mode packages.LoadMode, patterns ...string) []*packages.Package {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{Mode: mode}, patterns...)
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}
	return pkgs
}

// =============================================================================
// COHESION TEST - Core declarations must be shared by several packages
// =============================================================================

// TestGovernance_CoreCohesion reports exported pkg/core declarations that only
// one other package uses. Those belong in their sole consumer.
func TestGovernance_CoreCohesion(t *testing.T) {
	pkgs := loadModule(t,
		packages.NeedName|packages.NeedImports|packages.NeedTypes|packages.NeedTypesInfo|packages.NeedDeps,
		modulePath+"/...")

	corePath := modulePath + "/pkg/core"
	users := make(map[types.Object]map[string]bool)
	for _, p := range pkgs {
		if p.PkgPath != corePath {
			continue
		}
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			if obj := scope.Lookup(name); obj.Exported() {
				users[obj] = make(map[string]bool)
			}
		}
	}
	if len(users) == 0 {
		t.Fatal("Could not find pkg/core")
	}

	for _, p := range pkgs {
		if p.PkgPath == corePath || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if set, ok := users[obj]; ok {
				set[strings.TrimPrefix(p.PkgPath, modulePath+"/")] = true
			}
		}
	}

	for obj, importers := range users {
		name := obj.Name()
		switch {
		case isCohesionAllowlisted(name):
		case len(importers) == 0:
			t.Logf("WARNING: Unused Core declaration: %s (consider deleting)", name)
		case len(importers) == 1:
			for user := range importers {
				t.Errorf("COHESION VIOLATION: 'core.%s' is used ONLY by '%s'.\n"+
					"   Fix: Move it from pkg/core to %s.", name, user, user)
			}
		}
	}
}

// isCohesionAllowlisted returns true for types allowed to have single usage.
func isCohesionAllowlisted(name string) bool {
	allowlist := map[string]bool{
		"RuleOptions":   true, // Config value, decoded in one place
		"FileFacts":     true, // Filled by the extractor, read by file rules
		"ProjectConfig": true, // Config struct for the LSP and init
	}
	return allowlist[name]
}

// =============================================================================
// PURITY TEST - No type alias re-exports from library packages
// =============================================================================

// TestGovernance_NoTypeAliasReexports ensures the naming catalog and the
// extractor use core types directly instead of re-exporting them.
// pkg/lint keeps its Severity alias for rule authors.
func TestGovernance_NoTypeAliasReexports(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedImports|packages.NeedTypes,
		modulePath+"/pkg/...", modulePath+"/internal/extract")

	forbidden := map[string]bool{
		"Category": true, "Casing": true, "Identifier": true,
		"FileFacts": true, "RuleInfo": true, "Severity": true,
	}
	allowed := map[string]map[string]bool{
		modulePath + "/pkg/lint": {"Severity": true},
	}

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 || pkg.PkgPath == modulePath+"/pkg/core" {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() || !forbidden[name] || allowed[pkg.PkgPath][name] {
				continue
			}

			if typeName, ok := obj.(*types.TypeName); ok && typeName.IsAlias() {
				t.Errorf("PURITY VIOLATION: Package '%s' re-exports type alias '%s'.\n"+
					"   Fix: Remove the alias. Consumers should use core.%s directly.",
					strings.TrimPrefix(pkg.PkgPath, modulePath+"/"), name, name)
			}
		}
	}
}
