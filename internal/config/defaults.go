package config

import "github.com/leapstack-labs/namelint/pkg/core"

// Default configuration values.
const (
	DefaultStateFile = ".namelint/state.db"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultExclude lists globs skipped unless the project config overrides them.
var DefaultExclude = []string{"**/*.generated.*", "**/__generated__/**"}

// ApplyDefaults applies default values to a ProjectConfig.
func ApplyDefaults(c *core.ProjectConfig) {
	if c == nil {
		return
	}
	if c.Exclude == nil {
		c.Exclude = append([]string(nil), DefaultExclude...)
	}
	if c.Lint == nil {
		c.Lint = &core.LintConfig{}
	}
	if c.Naming == nil {
		c.Naming = &core.NamingConfig{}
	}
}
