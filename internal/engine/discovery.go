package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/namelint/internal/extract"
)

// Discover returns every lintable file below the project root, sorted.
func (e *Engine) Discover(ctx context.Context) ([]string, error) {
	return e.discoverIn(ctx, e.root)
}

// resolve expands the lint arguments into a sorted, de-duplicated file list.
func (e *Engine) resolve(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return e.Discover(ctx)
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if info.IsDir() {
			found, err := e.discoverIn(ctx, p)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		// Explicit files bypass include/exclude
		if extract.IsTargetFile(p) {
			files = append(files, filepath.Clean(p))
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func (e *Engine) discoverIn(ctx context.Context, dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !extract.IsTargetFile(path) {
			return nil
		}
		if !e.matches(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	slices.Sort(files)
	return files, nil
}

// Selected reports whether a project run would lint path.
func (e *Engine) Selected(path string) bool {
	return extract.IsTargetFile(path) && e.matches(path)
}

// matches applies the include/exclude globs to a path relative to the root.
func (e *Engine) matches(path string) bool {
	rel, err := filepath.Rel(e.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	if len(e.include) > 0 && !matchAny(e.include, rel) {
		return false
	}
	return !matchAny(e.exclude, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(extract.SkipDirs, name)
}
