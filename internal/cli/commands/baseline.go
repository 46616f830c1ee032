package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/namelint/internal/cli/output"
	"github.com/leapstack-labs/namelint/internal/state"
)

// NewBaselineCommand creates the baseline command group.
func NewBaselineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Inspect the issue baseline",
		Long: `The baseline records accepted issues so that lint only reports new ones.
Record it with 'namelint lint --update-baseline'.`,
	}

	cmd.AddCommand(newBaselineShowCommand())
	return cmd
}

func newBaselineShowCommand() *cobra.Command {
	var format string
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show baseline size and recent lint runs",
		Example: `  # Show the baseline
  namelint baseline show

  # Show the last 20 runs as JSON
  namelint baseline show --limit 20 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBaselineShow(cmd, format, limit)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, markdown")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")

	return cmd
}

func runBaselineShow(cmd *cobra.Command, format string, limit int) error {
	cmdCtx := NewCommandContext(cmd, format)
	r := cmdCtx.Renderer

	store, err := openStore(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	count, err := store.CountBaseline()
	if err != nil {
		return fmt.Errorf("failed to count baseline: %w", err)
	}
	runs, err := store.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	out := output.BaselineOutput{
		StatePath: cmdCtx.Cfg.StatePath,
		Entries:   count,
		Runs:      make([]output.RunInfo, 0, len(runs)),
	}
	for _, run := range runs {
		out.Runs = append(out.Runs, runInfo(run))
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, "Baseline")
	printKeyValue(r, "State", out.StatePath)
	printKeyValue(r, "Entries", strconv.Itoa(out.Entries))
	r.Println("")

	if len(out.Runs) == 0 {
		r.Muted("No lint runs recorded")
		return nil
	}

	r.Header(2, "Recent Runs")
	rows := make([][]string, 0, len(out.Runs))
	for _, run := range out.Runs {
		rows = append(rows, []string{
			run.ID[:min(8, len(run.ID))],
			run.StartedAt,
			strconv.Itoa(run.Files),
			strconv.Itoa(run.Issues),
		})
	}
	r.Table([]string{"Run", "Started", "Files", "Issues"}, rows)
	return nil
}

func runInfo(run *state.Run) output.RunInfo {
	info := output.RunInfo{
		ID:        run.ID,
		StartedAt: run.StartedAt.Format(time.RFC3339),
		Files:     run.Files,
		Issues:    run.Issues,
	}
	if run.CompletedAt != nil {
		info.CompletedAt = run.CompletedAt.Format(time.RFC3339)
	}
	return info
}

func printKeyValue(r *output.Renderer, key, value string) {
	if r.EffectiveMode() == output.ModeText {
		r.Printf("  %s: %s\n", r.Styles().Bold.Render(key), value)
		return
	}
	r.Println(output.FormatKeyValue(key, value))
}
