// Package rules registers the built-in naming rules.
//
// Rules are organized by group:
//   - identifier: Rules for code identifiers (NC01-NC04)
//   - file: Rules for file names (FN01-FN02)
//   - testcase: Rules for test descriptions (TS01)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/namelint/pkg/lint/rules"
package rules
