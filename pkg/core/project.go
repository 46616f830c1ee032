package core

// ProjectConfig holds project-level configuration shared by the CLI and the
// language server.
type ProjectConfig struct {
	Include []string      `koanf:"include" yaml:"include,omitempty"`
	Exclude []string      `koanf:"exclude" yaml:"exclude,omitempty"`
	Lint    *LintConfig   `koanf:"lint" yaml:"lint,omitempty"`
	Naming  *NamingConfig `koanf:"naming" yaml:"naming,omitempty"`
}

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled" yaml:"disabled,omitempty"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity" yaml:"severity,omitempty"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules" yaml:"rules,omitempty"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// NamingConfig extends the built-in rule catalog. Everything here is applied
// once when the catalog is built; the catalog is read-only afterwards.
type NamingConfig struct {
	// ForbiddenTokens are added to the built-in abbreviations and noise words.
	ForbiddenTokens []string `koanf:"forbidden_tokens" yaml:"forbidden_tokens,omitempty"`

	// AllowedTokens are removed from the forbidden set.
	AllowedTokens []string `koanf:"allowed_tokens" yaml:"allowed_tokens,omitempty"`

	// ActionVerbs are added to the verb set for function-like categories.
	ActionVerbs []string `koanf:"action_verbs" yaml:"action_verbs,omitempty"`

	// EventWords are added to the words accepted as the last event-handler slot.
	EventWords []string `koanf:"event_words" yaml:"event_words,omitempty"`

	// EnforceStructure turns on structural checks for categories whose
	// pattern is descriptive by default (component, typeOrInterface, constant).
	EnforceStructure []Category `koanf:"enforce_structure" yaml:"enforce_structure,omitempty"`
}
