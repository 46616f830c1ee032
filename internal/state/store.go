// Package state persists lint runs and the accepted-issue baseline in SQLite.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store is the persistence interface used by the CLI.
type Store interface {
	Open(path string) error
	Close() error
	Migrate() error

	CreateRun() (*Run, error)
	CompleteRun(id string, files, issues int) error
	ListRuns(limit int) ([]*Run, error)

	ReplaceBaseline(entries []BaselineEntry) error
	BaselineFingerprints() (map[string]struct{}, error)
	CountBaseline() (int, error)
}

// Run records one lint invocation.
type Run struct {
	ID          string
	StartedAt   time.Time
	CompletedAt *time.Time
	Files       int
	Issues      int
}

// BaselineEntry is an accepted issue that later runs suppress.
type BaselineEntry struct {
	Fingerprint string
	Path        string
	RuleID      string
	Identifier  string
	CreatedAt   time.Time
}

// NewBaselineEntry builds an entry with its fingerprint filled in.
func NewBaselineEntry(path, ruleID, identifier string) BaselineEntry {
	return BaselineEntry{
		Fingerprint: Fingerprint(path, ruleID, identifier),
		Path:        path,
		RuleID:      ruleID,
		Identifier:  identifier,
	}
}

// Fingerprint identifies an issue independently of its line, so edits
// elsewhere in a file do not invalidate the baseline.
func Fingerprint(path, ruleID, identifier string) string {
	sum := sha256.Sum256([]byte(path + "|" + ruleID + "|" + identifier))
	return hex.EncodeToString(sum[:])
}
