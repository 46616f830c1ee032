// Package engine runs the naming checks over a source tree.
// It handles file discovery, parallel extraction and analysis, and watch mode.
package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/namelint/internal/extract"
	"github.com/leapstack-labs/namelint/pkg/lint"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

// Engine discovers and lints TypeScript/JavaScript sources.
type Engine struct {
	root     string
	include  []string
	exclude  []string
	workers  int
	analyzer *lint.Analyzer
	logger   *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Root is the project directory; include/exclude globs are relative to it
	Root string
	// Include lists doublestar globs of files to lint (default: everything)
	Include []string
	// Exclude lists doublestar globs of files to skip
	Exclude []string
	// Workers bounds the number of files processed concurrently (default: NumCPU)
	Workers int
	// Analyzer runs the lint rules (default: all rules, default catalog)
	Analyzer *lint.Analyzer
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Result is the outcome of one lint run.
type Result struct {
	Diagnostics []lint.Diagnostic
	Files       int
	Identifiers int
	Skipped     []SkippedFile
	Duration    time.Duration
}

// SkippedFile is a file that could not be read or parsed.
type SkippedFile struct {
	Path string
	Err  error
}

// New creates a new engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	analyzer := cfg.Analyzer
	if analyzer == nil {
		analyzer = lint.NewAnalyzer(nil, nil)
	}

	return &Engine{
		root:     root,
		include:  cfg.Include,
		exclude:  cfg.Exclude,
		workers:  workers,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Root returns the project directory.
func (e *Engine) Root() string {
	return e.root
}

// Analyzer returns the analyzer used for every file.
func (e *Engine) Analyzer() *lint.Analyzer {
	return e.analyzer
}

type fileResult struct {
	diagnostics []lint.Diagnostic
	identifiers int
	skipped     *SkippedFile
}

// Lint checks the given files and directories. With no paths the whole
// project is discovered. Files that cannot be read or parsed are logged and
// skipped; an identifier with an unknown category aborts the run.
func (e *Engine) Lint(ctx context.Context, paths ...string) (*Result, error) {
	start := time.Now()

	files, err := e.resolve(ctx, paths)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("linting files", "files", len(files), "workers", e.workers)

	// Each worker owns one slot; slots are merged after Wait.
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, path := range files {
		g.Go(func() error {
			res, err := e.lintFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Files: len(files)}
	for _, res := range results {
		result.Identifiers += res.identifiers
		result.Diagnostics = append(result.Diagnostics, res.diagnostics...)
		if res.skipped != nil {
			result.Skipped = append(result.Skipped, *res.skipped)
		}
	}
	SortDiagnostics(result.Diagnostics)
	result.Duration = time.Since(start)

	e.logger.Info("lint completed",
		"files", result.Files,
		"identifiers", result.Identifiers,
		"issues", len(result.Diagnostics),
		"skipped", len(result.Skipped),
		"duration_ms", result.Duration.Milliseconds())

	return result, nil
}

// LintSource checks in-memory content as if it were stored at path.
func (e *Engine) LintSource(ctx context.Context, path string, content []byte) ([]lint.Diagnostic, error) {
	extracted, err := extract.ExtractSource(ctx, path, content)
	if err != nil {
		return nil, err
	}
	diags, err := e.analyzer.AnalyzeAll(extracted.Identifiers)
	if err != nil {
		return nil, err
	}
	SortDiagnostics(diags)
	return diags, nil
}

func (e *Engine) lintFile(ctx context.Context, path string) (fileResult, error) {
	extracted, err := extract.ExtractFile(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return fileResult{}, ctx.Err()
		}
		e.logger.Warn("skipping file", "path", path, "error", err)
		return fileResult{skipped: &SkippedFile{Path: path, Err: err}}, nil
	}
	if extracted.Partial {
		e.logger.Debug("syntax errors, extraction is partial", "path", path)
	}

	diags, err := e.analyzer.AnalyzeAll(extracted.Identifiers)
	if err != nil {
		if errors.Is(err, naming.ErrUnknownCategory) {
			return fileResult{}, fmt.Errorf("lint aborted: %w", err)
		}
		return fileResult{}, err
	}

	return fileResult{diagnostics: diags, identifiers: len(extracted.Identifiers)}, nil
}

// SortDiagnostics orders diagnostics by path, line, column and rule ID.
func SortDiagnostics(diags []lint.Diagnostic) {
	slices.SortStableFunc(diags, func(a, b lint.Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
			cmp.Compare(a.RuleID, b.RuleID),
		)
	})
}
