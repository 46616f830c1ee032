package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/namelint/internal/cli/config"
	"github.com/leapstack-labs/namelint/internal/cli/output"
	"github.com/leapstack-labs/namelint/internal/engine"
	"github.com/leapstack-labs/namelint/internal/state"
	"github.com/leapstack-labs/namelint/pkg/lint"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext. A non-empty format overrides
// the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// getConfig returns the current configuration, or defaults when no config
// was loaded (commands constructed directly in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// newChecker builds a checker whose catalog includes the project's naming
// extensions.
func newChecker(cfg *config.Config) *naming.Checker {
	return naming.NewChecker(naming.NewCatalog(naming.FromConfig(cfg.Naming)))
}

// buildLintConfig merges project lint config with command-line overrides.
func buildLintConfig(cfg *config.Config, disable, only []string) *lint.Config {
	var lintCfg *lint.Config
	if cfg != nil {
		lintCfg = lint.ConfigFromProject(cfg.Lint)
	} else {
		lintCfg = lint.NewConfig()
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(only) > 0 {
		enabled := make(map[string]bool)
		for _, id := range only {
			enabled[strings.ToUpper(strings.TrimSpace(id))] = true
		}
		for _, rule := range lint.IdentifierRules() {
			if !enabled[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg
}

// newEngine creates an engine rooted at the project directory.
func newEngine(cfg *config.Config, lintCfg *lint.Config, workers int, logger *slog.Logger) *engine.Engine {
	if workers <= 0 {
		workers = cfg.Workers
	}
	return engine.New(engine.Config{
		Root:     cfg.ProjectRoot,
		Include:  cfg.Include,
		Exclude:  cfg.Exclude,
		Workers:  workers,
		Analyzer: lint.NewAnalyzer(lintCfg, newChecker(cfg)),
		Logger:   logger,
	})
}

// openStore opens and migrates the state database.
// The caller closes the returned store.
func openStore(cfg *config.Config, logger *slog.Logger) (*state.SQLiteStore, error) {
	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate state store: %w", err)
	}
	return store, nil
}

// displayPath shows paths relative to the project root when possible.
func displayPath(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return filepath.ToSlash(path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
