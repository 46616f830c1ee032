package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/namelint/internal/extract"
)

const debounceDelay = 100 * time.Millisecond

// Watch re-lints paths whenever a source file is written or created and
// hands each outcome to fn. It blocks until ctx is cancelled.
func (e *Engine) Watch(ctx context.Context, fn func(*Result, error), paths ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	targets := paths
	if len(targets) == 0 {
		targets = []string{e.root}
	}
	scope, err := e.watchTargets(watcher, targets)
	if err != nil {
		return err
	}

	e.logger.Info("watching for changes", "paths", targets)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 && scope.inDirs(event.Name) {
				// New directories need their own watch
				_ = e.watchDir(watcher, event.Name)
			}
			if !extract.IsTargetFile(event.Name) || !scope.covers(event.Name) {
				continue
			}
			e.logger.Debug("change detected", "path", event.Name)
			debounce = time.After(debounceDelay)

		case <-debounce:
			debounce = nil
			fn(e.Lint(ctx, paths...))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watcher error", "error", err)
		}
	}
}

// watchScope holds the watched directory trees and the individually watched
// files. Files are watched through their parent directory, so events for
// siblings must be filtered out.
type watchScope struct {
	dirs  []string
	files map[string]bool
}

// watchTargets registers every target with the watcher.
func (e *Engine) watchTargets(watcher *fsnotify.Watcher, targets []string) (*watchScope, error) {
	scope := &watchScope{files: make(map[string]bool)}
	for _, target := range targets {
		abs, err := filepath.Abs(target)
		if err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", target, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", target, err)
		}

		if !info.IsDir() {
			if err := watcher.Add(filepath.Dir(abs)); err != nil {
				return nil, fmt.Errorf("failed to watch %s: %w", target, err)
			}
			scope.files[abs] = true
			continue
		}

		if err := e.watchDir(watcher, abs); err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", target, err)
		}
		scope.dirs = append(scope.dirs, abs)
	}
	return scope, nil
}

// inDirs reports whether path lies below a watched directory tree.
func (s *watchScope) inDirs(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range s.dirs {
		rel, err := filepath.Rel(dir, abs)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// covers reports whether a change to path should trigger a re-lint.
func (s *watchScope) covers(path string) bool {
	if abs, err := filepath.Abs(path); err == nil && s.files[abs] {
		return true
	}
	return s.inDirs(path)
}

// watchDir recursively adds a directory to the watcher.
func (e *Engine) watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
