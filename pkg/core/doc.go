// Package core defines the shared language of the namelint system.
//
// This package contains:
//   - Identifier categories and casing conventions (Category, Casing)
//   - The identifier value passed between extractor, checker and rules (Identifier)
//   - Severity levels and rule metadata (Severity, RuleInfo)
//   - Configuration types shared by the CLI and the language server (ProjectConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
