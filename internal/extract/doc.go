// Package extract finds the identifiers in TypeScript and JavaScript source
// files and classifies each one into a naming category using tree-sitter.
//
// Classification is syntactic: a function whose body renders JSX is a
// component, a const bound to useState's first element is a boolean when the
// initial value is a boolean literal, and so on. The file itself is also
// returned as an identifier (moduleFile, testFile or component) carrying the
// facts the file-name rules need.
package extract
