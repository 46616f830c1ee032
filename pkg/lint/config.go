package lint

import (
	"strings"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// Config controls which rules are enabled and their severity.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// ConfigFromProject converts the lint section of a project config.
// Unknown severity names are ignored; validation reports them earlier.
func ConfigFromProject(lc *core.LintConfig) *Config {
	cfg := NewConfig()
	if lc == nil {
		return cfg
	}
	for _, id := range lc.Disabled {
		cfg.Disable(id)
	}
	for id, name := range lc.Severity {
		if sev, ok := core.ParseSeverity(name); ok {
			cfg.SetSeverity(id, sev)
		}
	}
	for id, opts := range lc.Rules {
		cfg.SetRuleOptions(id, opts)
	}
	return cfg
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[normalizeID(ruleID)]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[normalizeID(ruleID)]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[normalizeID(ruleID)]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[normalizeID(ruleID)] = true
	return c
}

// Enable re-enables a previously disabled rule.
func (c *Config) Enable(ruleID string) *Config {
	delete(c.DisabledRules, normalizeID(ruleID))
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[normalizeID(ruleID)] = severity
	return c
}

// SetRuleOptions sets the options for a rule, replacing earlier ones.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[normalizeID(ruleID)] = opts
	return c
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
