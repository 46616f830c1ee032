package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sharedcfg "github.com/leapstack-labs/namelint/internal/config"
	"github.com/leapstack-labs/namelint/pkg/core"
)

// initConfig is the document written by init.
type initConfig struct {
	core.ProjectConfig `yaml:",inline"`
	StatePath          string `yaml:"state_path"`
	Output             string `yaml:"output"`
}

const initHeader = `# namelint configuration
# Documentation: https://namelint.dev/docs/config

`

const initFooter = `
# lint:
#   disabled: [FN02]
#   severity:
#     NC04: error
#
# naming:
#   forbidden_tokens: [mgr]
#   allowed_tokens: [id, url]
#   action_verbs: [hydrate]
#   event_words: [dismiss]
#   enforce_structure: [component, constant]
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a namelint.yaml configuration",
		Long: `Create a namelint.yaml with default include and exclude globs and a
commented example of the lint and naming sections.`,
		Example: `  # Initialize in current directory
  namelint init

  # Initialize another directory
  namelint init ./packages/web

  # Force overwrite existing config
  namelint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	r := NewCommandContext(cmd, "").Renderer

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, sharedcfg.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", sharedcfg.ConfigFileName)
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.Success("Created " + configPath)
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust include and exclude globs")
	r.Println("  2. Run 'namelint lint' to check names")
	r.Println("  3. Run 'namelint lint --update-baseline' to accept existing issues")

	return nil
}

func defaultConfigYAML() ([]byte, error) {
	doc := initConfig{
		ProjectConfig: core.ProjectConfig{
			Include: []string{"src/**"},
			Exclude: append([]string(nil), sharedcfg.DefaultExclude...),
		},
		StatePath: sharedcfg.DefaultStateFile,
		Output:    sharedcfg.DefaultOutput,
	}

	var buf bytes.Buffer
	buf.WriteString(initHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString(initFooter)
	return buf.Bytes(), nil
}
