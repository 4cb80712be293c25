package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nomadcxx/yearsort/internal/history"
	"github.com/Nomadcxx/yearsort/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ui.DisableColors()
	cfgFile, verbose, noColor = "", false, false

	buf := &bytes.Buffer{}
	oldOut := ui.Stdout
	ui.Stdout = buf
	t.Cleanup(func() { ui.Stdout = oldOut })

	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeConfig points the history file and ledger into a temp dir.
func writeConfig(t *testing.T) (cfgPath, historyPath string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUDO_USER", "")

	dir := t.TempDir()
	historyPath = filepath.Join(dir, "history.json")
	cfgPath = filepath.Join(dir, "config.toml")
	content := "[history]\nfile = \"" + filepath.ToSlash(historyPath) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath, historyPath
}

func TestExtractCmd(t *testing.T) {
	out, err := execute(t, "extract", "scan-31-DEC-2024.pdf", "IMG_19-06-01.jpg", "notes.txt")
	require.NoError(t, err)

	assert.Contains(t, out, "2024")
	assert.Contains(t, out, "day-mon-yyyy")
	assert.Contains(t, out, "2019")
	assert.Contains(t, out, "yy-mm-dd")
	assert.Contains(t, out, "no year")
}

func TestExtractCmd_Patterns(t *testing.T) {
	out, err := execute(t, "extract", "--patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "31-DEC-2024")
	assert.Contains(t, out, "24-12-31")
}

func TestExtractCmd_NoArgs(t *testing.T) {
	_, err := execute(t, "extract")
	assert.Error(t, err)
}

func TestHistoryCmd_Empty(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, err := execute(t, "--config", cfgPath, "history")
	require.NoError(t, err)
	assert.Equal(t, "No history available.\n", out)
}

func TestHistoryCmd_Lists(t *testing.T) {
	cfgPath, historyPath := writeConfig(t)
	store := history.New(historyPath)
	require.NoError(t, store.Save("/scans/a"))
	require.NoError(t, store.Save("/scans/b"))

	out, err := execute(t, "--config", cfgPath, "history")
	require.NoError(t, err)
	assert.Equal(t, "/scans/a\n/scans/b\n", out)
}

func TestOrganizeCmd(t *testing.T) {
	cfgPath, historyPath := writeConfig(t)
	folder := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(folder, "bill-02-FEB-2022.pdf"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "readme.txt"), []byte("x"), 0644))

	out, err := execute(t, "--config", cfgPath, "organize", folder)
	require.NoError(t, err)

	assert.Contains(t, out, "Files have been successfully organized by year!")
	assert.FileExists(t, filepath.Join(folder, "2022", "bill-02-FEB-2022.pdf"))
	assert.FileExists(t, filepath.Join(folder, "readme.txt"))

	saved, err := history.New(historyPath).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{folder}, saved)
}

func TestOrganizeCmd_DryRun(t *testing.T) {
	cfgPath, historyPath := writeConfig(t)
	folder := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(folder, "bill-02-FEB-2022.pdf"), []byte("x"), 0644))

	out, err := execute(t, "--config", cfgPath, "organize", "--dry-run", folder)
	require.NoError(t, err)

	assert.Contains(t, out, "bill-02-FEB-2022.pdf → 2022/")
	assert.NoDirExists(t, filepath.Join(folder, "2022"))
	assert.NoFileExists(t, historyPath)
}

func TestOrganizeCmd_MissingFolder(t *testing.T) {
	cfgPath, historyPath := writeConfig(t)

	out, err := execute(t, "--config", cfgPath, "organize", filepath.Join(t.TempDir(), "gone"))
	require.NoError(t, err)
	assert.Contains(t, out, "Folder not found")
	assert.NoFileExists(t, historyPath)
}

func TestConfigPathCmd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SUDO_USER", "")

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "yearsort", "config.toml")+"\n", out)
}

func TestNoColorFlag(t *testing.T) {
	out, err := execute(t, "--no-color", "extract", "x-01-JAN-2001.txt")
	require.NoError(t, err)
	assert.False(t, ui.IsTerminal())
	assert.Contains(t, out, "2001")
}
