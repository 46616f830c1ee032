// Package naming encodes the naming rule table for React/TypeScript code and
// checks single identifiers against it.
//
// # Catalog
//
// A Catalog maps every identifier category to exactly one NamingRule and holds
// the shared word lists: forbidden abbreviations and noise words, boolean
// prefixes, action verbs and event words. It is built once and is read-only
// afterwards:
//
//	catalog := naming.NewCatalog(naming.FromConfig(cfg.Naming))
//	rule, err := catalog.Rule(core.CategoryHook)
//
// # Checker
//
// A Checker evaluates one identifier in a single pass. Findings are returned
// as values, never as errors:
//
//	checker := naming.NewChecker(catalog)
//	if v := checker.Check("getProfile", core.CategoryFunction, false); v != nil {
//		fmt.Println(v.Kind, v.Slot) // MissingStructureSlot HighContext
//	}
//
// Both types are safe for concurrent use.
package naming
