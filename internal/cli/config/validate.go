package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules" // rule IDs referenced by lint.disabled
)

var validOutputs = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validOutputs, c.OutputFormat) {
		errs = append(errs, fmt.Errorf("output must be one of %s, got %q", strings.Join(validOutputs, "|"), c.OutputFormat))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}

	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				errs = append(errs, fmt.Errorf("lint.severity.%s: unknown severity %q (error, warning, info, hint)", id, sev))
			}
		}
		for _, id := range c.Lint.Disabled {
			if _, ok := lint.GetRuleByID(id); !ok {
				errs = append(errs, fmt.Errorf("lint.disabled: unknown rule %q", id))
			}
		}
	}

	return errors.Join(errs...)
}
