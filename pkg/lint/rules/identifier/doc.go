// Package identifier provides lint rules for code identifiers.
//
// Rules in this package:
//   - NC01: Identifier casing
//   - NC02: Forbidden abbreviations and noise words
//   - NC03: Boolean prefixes
//   - NC04: Action/context structure
package identifier
