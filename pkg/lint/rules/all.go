package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules/file"
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules/identifier"
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules/testcase"
)
