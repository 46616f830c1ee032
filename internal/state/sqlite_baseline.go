package state

import (
	"fmt"
	"log/slog"
	"time"
)

// ReplaceBaseline atomically swaps the stored baseline for entries.
// Entries without a fingerprint get one computed.
func (s *SQLiteStore) ReplaceBaseline(entries []BaselineEntry) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.BeginTx(ctx(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx(), `DELETE FROM baseline`); err != nil {
		return fmt.Errorf("failed to clear baseline: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx(),
		`INSERT OR IGNORE INTO baseline (fingerprint, path, rule_id, identifier, created_at)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare baseline insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().UTC()
	for _, e := range entries {
		fp := e.Fingerprint
		if fp == "" {
			fp = Fingerprint(e.Path, e.RuleID, e.Identifier)
		}
		if _, err := stmt.ExecContext(ctx(), fp, e.Path, e.RuleID, e.Identifier, now); err != nil {
			return fmt.Errorf("failed to insert baseline entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit baseline: %w", err)
	}

	s.logger.Debug("replaced baseline", slog.Int("entries", len(entries)))
	return nil
}

// BaselineFingerprints returns the set of accepted issue fingerprints.
func (s *SQLiteStore) BaselineFingerprints() (map[string]struct{}, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx(), `SELECT fingerprint FROM baseline`)
	if err != nil {
		return nil, fmt.Errorf("failed to query baseline: %w", err)
	}
	defer func() { _ = rows.Close() }()

	set := make(map[string]struct{})
	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, fmt.Errorf("failed to scan baseline: %w", err)
		}
		set[fp] = struct{}{}
	}
	return set, rows.Err()
}

// CountBaseline returns the number of accepted issues.
func (s *SQLiteStore) CountBaseline() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	var n int
	if err := s.db.QueryRowContext(ctx(), `SELECT COUNT(*) FROM baseline`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count baseline: %w", err)
	}
	return n, nil
}
