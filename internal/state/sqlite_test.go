package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/internal/testutil"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.Migrate())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_OpenMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".namelint", "state.db")

	store := NewSQLiteStore(nil)
	require.NoError(t, store.Open(path))
	require.NoError(t, store.Migrate())
	// Migrations are idempotent
	require.NoError(t, store.Migrate())

	version, err := store.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"runs", "baseline"} {
		rows, err := store.db.Query("SELECT 1 FROM " + table + " LIMIT 1")
		require.NoError(t, err, "table %s", table)
		_ = rows.Close()
	}
	require.NoError(t, store.Close())
	assert.FileExists(t, path)
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)

	assert.Error(t, store.Migrate())
	_, err := store.CreateRun()
	assert.Error(t, err)
	_, err = store.CountBaseline()
	assert.Error(t, err)
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	store := setupTestStore(t)

	run, err := store.CreateRun()
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Nil(t, run.CompletedAt)

	require.NoError(t, store.CompleteRun(run.ID, 12, 3))

	got, err := store.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Files)
	assert.Equal(t, 3, got.Issues)
	require.NotNil(t, got.CompletedAt)

	assert.Error(t, store.CompleteRun("missing", 0, 0))
	_, err = store.GetRun("missing")
	assert.Error(t, err)
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	store := setupTestStore(t)

	var ids []string
	for range 3 {
		run, err := store.CreateRun()
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)

	runs, err = store.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestSQLiteStore_Baseline(t *testing.T) {
	store := setupTestStore(t)

	count, err := store.CountBaseline()
	require.NoError(t, err)
	assert.Zero(t, count)

	entries := []BaselineEntry{
		NewBaselineEntry("src/usr-prf.ts", "NC02", "usrPrf"),
		NewBaselineEntry("src/usr-prf.ts", "NC02", "usr-prf"),
		// duplicate issue on another line
		NewBaselineEntry("src/usr-prf.ts", "NC02", "usrPrf"),
		{Path: "src/a.ts", RuleID: "NC01", Identifier: "MaxCount"},
	}
	require.NoError(t, store.ReplaceBaseline(entries))

	count, err = store.CountBaseline()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	set, err := store.BaselineFingerprints()
	require.NoError(t, err)
	assert.Contains(t, set, Fingerprint("src/usr-prf.ts", "NC02", "usrPrf"))
	assert.Contains(t, set, Fingerprint("src/a.ts", "NC01", "MaxCount"))

	// Replacing drops entries that are gone
	require.NoError(t, store.ReplaceBaseline(entries[:1]))
	count, err = store.CountBaseline()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, store.ReplaceBaseline(nil))
	count, err = store.CountBaseline()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("src/a.ts", "NC02", "usrPrf")
	assert.Len(t, a, 64)
	assert.Equal(t, a, Fingerprint("src/a.ts", "NC02", "usrPrf"))
	assert.NotEqual(t, a, Fingerprint("src/b.ts", "NC02", "usrPrf"))
	assert.NotEqual(t, a, Fingerprint("src/a.ts", "NC01", "usrPrf"))
	assert.Equal(t, a, NewBaselineEntry("src/a.ts", "NC02", "usrPrf").Fingerprint)
}
