package core

// Identifier is a single name found in source, together with the category
// it was declared as. It is the unit every naming rule checks.
type Identifier struct {
	Name      string   // Name as written, e.g. "getUserProfile" or "user-profile"
	Category  Category // Syntactic role
	IsBoolean bool     // Value is boolean-typed (variables only)
	Derived   bool     // Name is dictated by another declaration, e.g. a useState setter
	Path      string   // Source file path
	Line      int      // 1-based line
	Column    int      // 1-based column of the first character
	EndLine   int      // 1-based line of the last character
	EndColumn int      // 1-based column after the last character
	File      FileFacts
}

// FileFacts summarises a module for file-name rules.
// Only populated on identifiers whose category is a file category.
type FileFacts struct {
	Declarations  int  // Top-level declarations
	OnlyTypes     bool // Every top-level declaration is a type, interface or enum
	OnlyConstants bool // Every top-level declaration is a constant
	ServiceExport bool // Exports a symbol whose name ends in "Service"
	IsTest        bool // File is a test file (.test./.spec./__tests__)
}
