// Package config provides configuration management for the namelint CLI.
//
// This package extends the shared configuration types from pkg/core
// with CLI-specific fields. The shared types (LintConfig, NamingConfig) are
// re-exported here via type aliases for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/namelint/internal/config"
	"github.com/leapstack-labs/namelint/pkg/core"
)

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// NamingConfig is an alias for the shared naming configuration.
type NamingConfig = core.NamingConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	Include      []string      `koanf:"include"`
	Exclude      []string      `koanf:"exclude"`
	Workers      int           `koanf:"workers"`
	StatePath    string        `koanf:"state_path"`
	Verbose      bool          `koanf:"verbose"`
	OutputFormat string        `koanf:"output"`
	Lint         *LintConfig   `koanf:"lint"`
	Naming       *NamingConfig `koanf:"naming"`

	// ProjectRoot is the directory holding namelint.yaml, or the working
	// directory when there is none. Not read from config.
	ProjectRoot string `koanf:"-"`
}

// Project returns the subset of the configuration shared with the LSP.
func (c *Config) Project() *core.ProjectConfig {
	return &core.ProjectConfig{
		Include: c.Include,
		Exclude: c.Exclude,
		Lint:    c.Lint,
		Naming:  c.Naming,
	}
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultStateFile = sharedcfg.DefaultStateFile
	DefaultOutput    = sharedcfg.DefaultOutput
	DefaultWorkers   = 0 // runtime.NumCPU()
)

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	cfg := &Config{
		Exclude:      append([]string(nil), sharedcfg.DefaultExclude...),
		StatePath:    DefaultStateFile,
		OutputFormat: DefaultOutput,
		Lint:         &LintConfig{},
		Naming:       &NamingConfig{},
		ProjectRoot:  ".",
	}
	return cfg
}
