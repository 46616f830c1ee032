package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/namelint/internal/cli/output"
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

const checkPrompt = "namelint> "

// checkSession evaluates REPL lines against one checker.
type checkSession struct {
	checker  *naming.Checker
	renderer *output.Renderer
	boolean  bool
}

func runCheckREPL(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)

	session := &checkSession{
		checker:  newChecker(cmdCtx.Cfg),
		renderer: cmdCtx.Renderer,
		boolean:  opts.Boolean,
	}

	// History lives next to the state database
	historyFile := filepath.Join(filepath.Dir(cmdCtx.Cfg.StatePath), "check_history")
	if err := os.MkdirAll(filepath.Dir(historyFile), 0o750); err != nil {
		historyFile = ""
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          checkPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newCategoryCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "namelint check")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Enter <category> <identifier>, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if quit := session.handleLine(line); quit {
			break
		}
	}

	return nil
}

// handleLine evaluates one input line and reports whether the session ends.
func (s *checkSession) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		return s.handleDotCommand(line)
	}

	categoryArg, name, ok := strings.Cut(line, " ")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		s.renderer.Error("usage: <category> <identifier>")
		return false
	}
	category, err := parseCategory(categoryArg)
	if err != nil {
		s.renderer.Error(err.Error())
		return false
	}

	report := s.checker.Evaluate(name, category, s.boolean)
	if err := renderCheckReport(s.renderer, s.checker.Catalog(), report); err != nil {
		s.renderer.Error(err.Error())
	}
	s.renderer.Println("")
	return false
}

func (s *checkSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printCheckHelp(s.renderer.Writer())

	case ".categories":
		renderCatalog(s.renderer, s.checker.Catalog())

	case ".boolean":
		if len(parts) > 1 {
			s.boolean = parts[1] == "on" || parts[1] == "true"
		} else {
			s.boolean = !s.boolean
		}
		s.renderer.Muted(fmt.Sprintf("boolean: %t", s.boolean))

	default:
		s.renderer.Error(fmt.Sprintf("unknown command: %s (type .help for commands)", command))
	}
	return false
}

// renderCatalog prints the naming rule of every category.
func renderCatalog(r *output.Renderer, catalog *naming.Catalog) {
	rows := make([][]string, 0, len(catalog.Rules()))
	for _, rule := range catalog.Rules() {
		enforced := "no"
		if rule.Enforced {
			enforced = "yes"
		}
		rows = append(rows, []string{
			rule.Category.String(),
			string(rule.Casing),
			rule.PatternString(),
			enforced,
		})
	}
	r.Table([]string{"Category", "Casing", "Pattern", "Enforced"}, rows)
}

func printCheckHelp(w io.Writer) {
	help := `
Commands:
  .help               Show this help message
  .categories         List categories with casing and pattern
  .boolean [on|off]   Treat identifiers as boolean values
  .quit / .exit       Exit the session

Input:
  <category> <identifier>   e.g. "hook useUserProfile"
  Test descriptions may contain spaces: "testCase should render name"
`
	_, _ = fmt.Fprintln(w, help)
}

// newCategoryCompleter completes category names and dot-commands.
func newCategoryCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, c := range core.Categories() {
		items = append(items, readline.PcItem(c.String()))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".categories"),
		readline.PcItem(".boolean", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
