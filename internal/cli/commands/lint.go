package commands

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/namelint/internal/cli/output"
	"github.com/leapstack-labs/namelint/internal/engine"
	"github.com/leapstack-labs/namelint/internal/state"
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules" // register naming rules
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format         string   // Output format: auto, text, markdown, json
	Disable        []string // Rule IDs to disable
	Severity       string   // Minimum severity: error, warning, info, hint
	Rules          []string // Run only specific rules
	Workers        int      // Concurrent files (0 = config or NumCPU)
	Baseline       bool     // Hide issues recorded in the baseline
	UpdateBaseline bool     // Record current issues as the new baseline
	Watch          bool     // Re-lint on file changes
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check identifier and file names",
		Long: `Extract identifiers from TypeScript and JavaScript sources and check
them against the naming catalog.

Files and directories may be given explicitly; otherwise the project is
discovered using the include and exclude globs in namelint.yaml.

Issues recorded in the baseline are hidden unless --baseline=false is set.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the whole project
  namelint lint

  # Lint one directory
  namelint lint ./src/components

  # Output as JSON
  namelint lint --format json

  # Disable specific rules
  namelint lint --disable NC02,FN02

  # Only report errors
  namelint lint --severity error

  # Accept current issues and only report new ones from now on
  namelint lint --update-baseline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: auto, text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "info", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", 0, "Files processed concurrently (default: number of CPUs)")
	cmd.Flags().BoolVar(&opts.Baseline, "baseline", true, "Hide issues recorded in the baseline")
	cmd.Flags().BoolVar(&opts.UpdateBaseline, "update-baseline", false, "Record current issues as the baseline")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint when files change")

	return cmd
}

func runLint(cmd *cobra.Command, paths []string, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q: must be one of error, warning, info, hint", opts.Severity)
	}
	for _, id := range append(append([]string{}, opts.Rules...), opts.Disable...) {
		if _, ok := lint.GetRuleByID(strings.TrimSpace(id)); !ok {
			return fmt.Errorf("unknown rule: %s", id)
		}
	}

	lintCfg := buildLintConfig(cfg, opts.Disable, opts.Rules)
	eng := newEngine(cfg, lintCfg, opts.Workers, cmdCtx.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Watch {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		report := func(res *engine.Result, err error) {
			if err != nil {
				r.Error(err.Error())
				return
			}
			_, _ = reportLint(cmdCtx, eng, res, threshold, opts)
		}
		report(eng.Lint(ctx, paths...))
		r.Muted("Watching for changes (Ctrl+C to stop)")
		return eng.Watch(ctx, report, paths...)
	}

	res, err := eng.Lint(ctx, paths...)
	if err != nil {
		return err
	}

	hasIssues, err := reportLint(cmdCtx, eng, res, threshold, opts)
	if err != nil {
		return err
	}
	if hasIssues {
		return fmt.Errorf("lint issues found")
	}
	return nil
}

// reportLint applies the baseline, records the run and renders the result.
// It reports whether any issue at or above the threshold remains.
func reportLint(cmdCtx *CommandContext, eng *engine.Engine, res *engine.Result, threshold core.Severity, opts *LintOptions) (bool, error) {
	r := cmdCtx.Renderer
	root := eng.Root()

	for _, skipped := range res.Skipped {
		r.Warning(fmt.Sprintf("skipped %s: %v", displayPath(root, skipped.Path), skipped.Err))
	}

	diags := filterBySeverity(res.Diagnostics, threshold)

	baselined := 0
	store, err := openStore(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		// Lint without baseline or run history.
		cmdCtx.Logger.Warn("state store unavailable", "error", err)
	} else {
		defer func() { _ = store.Close() }()

		if opts.UpdateBaseline {
			if err := store.ReplaceBaseline(baselineEntries(root, res.Diagnostics)); err != nil {
				return false, fmt.Errorf("failed to update baseline: %w", err)
			}
			if r.EffectiveMode() != output.ModeJSON {
				r.Success(fmt.Sprintf("Baseline updated with %d issues", len(res.Diagnostics)))
			}
		}

		if opts.Baseline {
			diags, baselined, err = applyBaseline(store, root, diags)
			if err != nil {
				return false, err
			}
		}

		recordRun(cmdCtx, store, res.Files, len(diags))
	}

	summary := output.LintSummary{
		FilesAnalyzed: res.Files,
		Baselined:     baselined,
		Skipped:       len(res.Skipped),
	}
	results := groupByFile(root, diags)
	renderLintResults(r, summary, results)

	return len(diags) > 0, nil
}

// lintFileResult holds lint results for a single file.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

func filterBySeverity(diags []lint.Diagnostic, threshold core.Severity) []lint.Diagnostic {
	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.Severity <= threshold {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// groupByFile groups sorted diagnostics by display path.
func groupByFile(root string, diags []lint.Diagnostic) []lintFileResult {
	var results []lintFileResult
	for _, d := range diags {
		path := displayPath(root, d.Path)
		if n := len(results); n > 0 && results[n-1].Path == path {
			results[n-1].Diagnostics = append(results[n-1].Diagnostics, d)
			continue
		}
		results = append(results, lintFileResult{Path: path, Diagnostics: []lint.Diagnostic{d}})
	}
	return results
}

func baselineEntries(root string, diags []lint.Diagnostic) []state.BaselineEntry {
	entries := make([]state.BaselineEntry, 0, len(diags))
	for _, d := range diags {
		entries = append(entries, state.NewBaselineEntry(displayPath(root, d.Path), d.RuleID, d.Identifier))
	}
	return entries
}

// applyBaseline drops diagnostics whose fingerprint is in the baseline.
func applyBaseline(store state.Store, root string, diags []lint.Diagnostic) ([]lint.Diagnostic, int, error) {
	known, err := store.BaselineFingerprints()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load baseline: %w", err)
	}
	if len(known) == 0 {
		return diags, 0, nil
	}

	var kept []lint.Diagnostic
	for _, d := range diags {
		if _, ok := known[state.Fingerprint(displayPath(root, d.Path), d.RuleID, d.Identifier)]; ok {
			continue
		}
		kept = append(kept, d)
	}
	return kept, len(diags) - len(kept), nil
}

func recordRun(cmdCtx *CommandContext, store state.Store, files, issues int) {
	run, err := store.CreateRun()
	if err != nil {
		cmdCtx.Logger.Warn("failed to record run", "error", err)
		return
	}
	if err := store.CompleteRun(run.ID, files, issues); err != nil {
		cmdCtx.Logger.Warn("failed to complete run", "run_id", run.ID, "error", err)
	}
}

func renderLintResults(r *output.Renderer, summary output.LintSummary, results []lintFileResult) {
	summary.FilesWithIssues = len(results)
	for _, res := range results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			Summary: summary,
			Files:   []output.LintFileResult{},
		}
		for _, res := range results {
			fileResult := output.LintFileResult{Path: res.Path}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
					RuleID:     d.RuleID,
					Severity:   d.Severity.String(),
					Message:    d.Message,
					Line:       d.Pos.Line,
					Column:     d.Pos.Column,
					Identifier: d.Identifier,
					Category:   d.Category.String(),
					Kind:       string(d.Kind),
					Reason:     d.Reason,
					Suggestion: d.Suggestion,
					DocURL:     d.DocumentationURL,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return
	}

	if len(results) == 0 {
		msg := fmt.Sprintf("No naming issues found in %d files", summary.FilesAnalyzed)
		if summary.Baselined > 0 {
			msg += fmt.Sprintf(" (%d baselined)", summary.Baselined)
		}
		r.Success(msg)
		return
	}

	styles := r.Styles()
	for _, res := range results {
		r.Println(styles.FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := d.Pos.String()
			if d.Pos.Line == 0 {
				loc = "-"
			}
			line := fmt.Sprintf("  %s  %s  %s  %s",
				styles.Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityStyle(r, d.Severity),
				styles.Bold.Render(d.RuleID),
				d.Message,
			)
			if d.Suggestion != "" {
				line += styles.Muted.Render(fmt.Sprintf(" (did you mean %s?)", d.Suggestion))
			}
			r.Println(line)
		}
		r.Println("")
	}

	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n", strings.Join(summaryParts, ", "), summary.FilesWithIssues, summary.FilesAnalyzed)
	if summary.Baselined > 0 {
		r.Muted(fmt.Sprintf("%d baselined issues hidden", summary.Baselined))
	}
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
