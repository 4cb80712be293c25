package transfer

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{
		"":       BackendAuto,
		"auto":   BackendAuto,
		"rename": BackendRename,
		"copy":   BackendCopy,
	} {
		got, err := ParseBackend(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" {
			assert.Equal(t, in, got.String())
		}
	}

	_, err := ParseBackend("rsync")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	assert.Equal(t, "rename", New(BackendRename).Name())
	assert.Equal(t, "copy", New(BackendCopy).Name())
	assert.Equal(t, "fallback(rename,copy)", New(BackendAuto).Name())
}

func TestMovers_MoveFile(t *testing.T) {
	for _, m := range []Mover{NewRenameMover(), NewCopyMover(4), New(BackendAuto)} {
		t.Run(m.Name(), func(t *testing.T) {
			tmpDir := t.TempDir()
			src := filepath.Join(tmpDir, "a-31-DEC-2024.txt")
			dstDir := filepath.Join(tmpDir, "2024")
			dst := filepath.Join(dstDir, "a-31-DEC-2024.txt")

			content := []byte("test content for move")
			require.NoError(t, os.WriteFile(src, content, 0640))
			require.NoError(t, os.Mkdir(dstDir, 0755))

			result, err := m.Move(src, dst)
			require.NoError(t, err)
			assert.Equal(t, src, result.Source)
			assert.Equal(t, dst, result.Destination)

			assert.NoFileExists(t, src)
			got, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, content, got)
		})
	}
}

func TestCopyMover_KeepsMode(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.sh")
	dst := filepath.Join(tmpDir, "dst.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0750))
	require.NoError(t, os.Chmod(src, 0750))

	result, err := NewCopyMover(0).Move(src, dst)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.BytesCopied)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0750), info.Mode().Perm())
}

func TestMovers_SourceNotFound(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "missing.txt")
	dst := filepath.Join(tmpDir, "dest.txt")

	for _, m := range []Mover{NewRenameMover(), NewCopyMover(0), New(BackendAuto)} {
		_, err := m.Move(src, dst)
		assert.ErrorIs(t, err, ErrSourceNotFound, m.Name())
	}
}

func TestCopyMover_MissingDestinationDir(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	_, err := NewCopyMover(0).Move(src, filepath.Join(tmpDir, "nope", "dst.txt"))
	assert.ErrorIs(t, err, ErrDestinationNotWritable)
	assert.FileExists(t, src)
}

func TestCopyMover_RecreatesSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	tmpDir := t.TempDir()
	target := filepath.Join(t.TempDir(), "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("real"), 0644))

	src := filepath.Join(tmpDir, "link-24-05-05.txt")
	require.NoError(t, os.Symlink(target, src))
	dstDir := filepath.Join(tmpDir, "2024")
	require.NoError(t, os.Mkdir(dstDir, 0755))
	dst := filepath.Join(dstDir, "link-24-05-05.txt")

	result, err := NewCopyMover(0).Move(src, dst)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.BytesCopied)

	info, err := os.Lstat(dst)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "destination should be a link")
	got, err := os.Readlink(dst)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	_, err = os.Lstat(src)
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, target)
}

func TestCopyMover_ReplacesExistingWithSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("real"), 0644))
	src := filepath.Join(tmpDir, "link.txt")
	require.NoError(t, os.Symlink(target, src))
	dst := filepath.Join(tmpDir, "existing.txt")
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0644))

	_, err := NewCopyMover(0).Move(src, dst)
	require.NoError(t, err)

	got, err := os.Readlink(dst)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestCopyMover_KeepsModTime(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
	mtime := time.Date(2019, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	result, err := NewCopyMover(0).Move(src, dst)
	require.NoError(t, err)
	assert.NoError(t, result.Warning)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}
