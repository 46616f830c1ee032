package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/namelint/internal/cli/output"
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

// errNamingViolation is returned when a checked name fails.
var errNamingViolation = errors.New("naming violations found")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Category string // Category of the identifier
	Boolean  bool   // Identifier holds a boolean value
	Format   string // Output format
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [identifier]",
		Short: "Check a single name against the catalog",
		Long: `Check one identifier against the naming rule of its category and
report every failed step: casing, forbidden tokens, boolean prefix and
structure.

With no identifier an interactive session starts. Each line has the form
"<category> <identifier>".`,
		Example: `  # Check a hook name
  namelint check useUserProfile --category hook

  # Check a boolean variable
  namelint check isModalOpen --category variable --boolean

  # Check a test description
  namelint check "should render user name" --category testCase

  # Interactive session
  namelint check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runCheckREPL(cmd, opts)
			}
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Identifier category, e.g. hook, component, eventHandler")
	cmd.Flags().BoolVarP(&opts.Boolean, "boolean", "b", false, "Identifier holds a boolean value")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func runCheck(cmd *cobra.Command, name string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)

	if opts.Category == "" {
		return fmt.Errorf("--category is required (one of: %s)", joinCategories(core.Categories()))
	}
	category, err := parseCategory(opts.Category)
	if err != nil {
		return err
	}

	checker := newChecker(cmdCtx.Cfg)
	report := checker.Evaluate(name, category, opts.Boolean)
	if err := renderCheckReport(cmdCtx.Renderer, checker.Catalog(), report); err != nil {
		return err
	}
	if !report.OK() {
		return errNamingViolation
	}
	return nil
}

func parseCategory(s string) (core.Category, error) {
	category, ok := core.ParseCategory(s)
	if !ok {
		return "", fmt.Errorf("unknown category %q (one of: %s)", s, joinCategories(core.Categories()))
	}
	return category, nil
}

// checkOutput converts a report to its JSON shape.
func checkOutput(catalog *naming.Catalog, report naming.Report) output.CheckOutput {
	out := output.CheckOutput{
		Identifier: report.Identifier,
		Category:   report.Category.String(),
		Tokens:     report.Tokens,
		OK:         report.OK(),
		Violations: []output.CheckViolation{},
	}
	if out.Tokens == nil {
		out.Tokens = []string{}
	}
	if rule, err := catalog.Rule(report.Category); err == nil {
		out.Pattern = rule.PatternString()
	}
	for _, v := range report.Violations() {
		out.Violations = append(out.Violations, output.CheckViolation{
			Kind:       string(v.Kind),
			Slot:       v.Slot,
			Tokens:     v.Tokens,
			Reason:     v.Reason,
			Suggestion: v.Suggestion,
		})
	}
	return out
}

func renderCheckReport(r *output.Renderer, catalog *naming.Catalog, report naming.Report) error {
	out := checkOutput(catalog, report)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	styles := r.Styles()
	subject := fmt.Sprintf("%s (%s)", styles.Identifier.Render(out.Identifier), out.Category)
	if len(out.Tokens) > 0 {
		subject += styles.Muted.Render(" [" + strings.Join(out.Tokens, " ") + "]")
	}

	if out.OK {
		r.Success(subject + " follows the naming rules")
		return nil
	}

	r.Println(subject)
	for _, v := range out.Violations {
		line := fmt.Sprintf("  %s  %s", styles.Error.Render(v.Kind), v.Reason)
		if v.Suggestion != "" {
			line += styles.Muted.Render(fmt.Sprintf(" (did you mean %s?)", v.Suggestion))
		}
		r.Println(line)
	}
	if out.Pattern != "" {
		r.Muted("  expected pattern: " + out.Pattern)
	}
	return nil
}
