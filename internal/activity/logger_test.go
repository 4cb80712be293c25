package activity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	logger, err := NewLogger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger
}

func TestNewLogger(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewLogger(tmpDir)
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, filepath.Join(tmpDir, "activity"), logger.GetLogDir())
	assert.DirExists(t, logger.GetLogDir())
}

func TestLogEntry(t *testing.T) {
	logger := newTestLogger(t)

	entry := Entry{
		Action:  ActionMove,
		Folder:  "/scans",
		Source:  "/scans/a-31-DEC-2024.txt",
		Target:  "/scans/2024/a-31-DEC-2024.txt",
		Year:    "2024",
		Pattern: "day-mon-yyyy",
	}
	require.NoError(t, logger.Log(entry))

	day := time.Now().Format("2006-01-02")
	content, err := os.ReadFile(filepath.Join(logger.GetLogDir(), "activity-"+day+".jsonl"))
	require.NoError(t, err)

	var logged Entry
	require.NoError(t, json.Unmarshal(content, &logged))
	assert.Equal(t, ActionMove, logged.Action)
	assert.Equal(t, "2024", logged.Year)
	assert.Equal(t, "day-mon-yyyy", logged.Pattern)
	assert.False(t, logged.Timestamp.IsZero())
	assert.NotContains(t, string(content), `"error"`)
}

func TestGetRecentEntries_NewestFirst(t *testing.T) {
	logger := newTestLogger(t)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, logger.Log(Entry{Action: ActionSkip, Source: name}))
	}

	entries, err := logger.GetRecentEntries(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Source)
	assert.Equal(t, "b", entries[1].Source)
}

func TestGetRecentEntries_AcrossDaysAndBadLines(t *testing.T) {
	logger := newTestLogger(t)

	older := filepath.Join(logger.GetLogDir(), "activity-2020-01-01.jsonl")
	lines := []string{`{"action":"move","source":"old"}`, `garbage`}
	require.NoError(t, os.WriteFile(older, []byte(strings.Join(lines, "\n")+"\n"), 0644))

	require.NoError(t, logger.Log(Entry{Action: ActionFail, Source: "new", Error: "boom"}))

	entries, err := logger.GetRecentEntries(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Source)
	assert.Equal(t, "old", entries[1].Source)
}

func TestPruneOld(t *testing.T) {
	logger := newTestLogger(t)

	oldDate := time.Now().AddDate(0, 0, -10)
	oldFile := filepath.Join(logger.GetLogDir(), "activity-"+oldDate.Format("2006-01-02")+".jsonl")
	require.NoError(t, os.WriteFile(oldFile, []byte("test"), 0644))

	recentFile := filepath.Join(logger.GetLogDir(), "activity-"+time.Now().Format("2006-01-02")+".jsonl")
	require.NoError(t, os.WriteFile(recentFile, []byte("test"), 0644))

	require.NoError(t, logger.PruneOld(7))

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, recentFile)
}
