// Package testcase provides lint rules for test descriptions.
//
// Rules in this package:
//   - TS01: should <behavior> when <condition>
package testcase
