package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *LedgerDB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenPath_CreatesAndReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")

	db, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, db.RecordMove(MoveRecord{
		Folder: "/scans", FileName: "a.txt", Year: "2024", Pattern: "yy-mm-dd",
		SourcePath: "/scans/a.txt", TargetPath: "/scans/2024/a.txt",
	}))
	require.NoError(t, db.Close())
	assert.FileExists(t, path)

	// Migrations must be idempotent across opens.
	db, err = OpenPath(path)
	require.NoError(t, err)
	defer db.Close()

	recent, err := db.RecentMoves(10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
	assert.Equal(t, path, db.Path())
}

func TestYearCounts_IgnoresDryRun(t *testing.T) {
	db := setupTestDB(t)

	for _, rec := range []MoveRecord{
		{Year: "2023", FileName: "a"},
		{Year: "2024", FileName: "b"},
		{Year: "2024", FileName: "c"},
		{Year: "2019", FileName: "d", DryRun: true},
	} {
		rec.Folder = "/scans"
		rec.Pattern = "yy-mm-dd"
		rec.SourcePath = "/scans/" + rec.FileName
		rec.TargetPath = "/scans/" + rec.Year + "/" + rec.FileName
		require.NoError(t, db.RecordMove(rec))
	}

	counts, err := db.YearCounts()
	require.NoError(t, err)
	assert.Equal(t, []YearCount{{Year: "2023", Count: 1}, {Year: "2024", Count: 2}}, counts)
}

func TestRecentMoves_NewestFirst(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, db.RecordMove(MoveRecord{
			Folder: "/scans", FileName: name, Year: "2024", Pattern: "day-mon-yyyy",
			SourcePath: "/scans/" + name, TargetPath: "/scans/2024/" + name,
			MovedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := db.RecentMoves(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].FileName)
	assert.Equal(t, "second", recent[1].FileName)
	assert.True(t, recent[0].MovedAt.Equal(base.Add(2*time.Minute)))
	assert.False(t, recent[0].DryRun)
}
