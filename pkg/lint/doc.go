// Package lint provides the rule framework for naming diagnostics.
//
// # Architecture
//
// The lint package sits between the naming checker and the callers that
// report findings (CLI, language server):
//
//  1. pkg/naming evaluates an identifier once and keeps each step's outcome
//  2. Rules in pkg/lint/rules turn those outcomes into Diagnostics
//  3. The Analyzer applies configuration (disabled rules, severity overrides,
//     rule options) and runs every rule that covers the identifier's category
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/namelint/pkg/lint/rules"
//
// # Rule Groups
//
//   - identifier (NC): casing, forbidden tokens, boolean prefixes, structure
//   - file (FN): file-name casing and suffix conventions
//   - test (TS): test case descriptions
//
// # Using the Registry
//
//	rules := lint.AllRules()
//	rule, ok := lint.GetRuleByID("NC01")
//	groupRules := lint.GetRulesByGroup("identifier")
//
// # Configuration
//
//	config := lint.NewConfig()
//	config.Disable("NC02")
//	config.SetSeverity("NC04", core.SeverityError)
//	config.SetRuleOptions("TS01", map[string]any{"require_condition": false})
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "my.custom_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    core.SeverityWarning,
//		Categories:  []core.Category{core.CategoryHook},
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
