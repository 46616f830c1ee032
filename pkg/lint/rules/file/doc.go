// Package file provides lint rules for source file names.
//
// Rules in this package:
//   - FN01: File-name casing
//   - FN02: Suffixes for type-only, constant-only and service modules
package file
