package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Nomadcxx/yearsort/internal/history"
	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	mu    sync.Mutex
	calls []string
}

func (r *countingRunner) Organize(folder string, _ organizer.ProgressReporter) (*organizer.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, folder)
	return &organizer.Result{Folder: folder}, nil
}

func (r *countingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func startWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
		w.Close()
	})
}

func TestNew_MissingFolder(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), &countingRunner{})
	assert.Error(t, err)
}

func TestNew_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := New(file, &countingRunner{})
	assert.Error(t, err)
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	runner := &countingRunner{}
	w, err := New(dir, runner, WithDebounce(150*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, dir, w.Folder())
	startWatcher(t, w)

	for _, name := range []string{"a-24-01-01.txt", "b-24-01-02.txt", "c-24-01-03.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	require.Eventually(t, func() bool { return runner.count() == 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, runner.count())
	runner.mu.Lock()
	assert.Equal(t, dir, runner.calls[0])
	runner.mu.Unlock()
}

func TestWatcher_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	runner := &countingRunner{}
	w, err := New(dir, runner, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	startWatcher(t, w)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "2024"), 0755))
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 0, runner.count())
}

func TestWatcher_OrganizesNewFile(t *testing.T) {
	dir := t.TempDir()
	org := organizer.NewOrganizer(
		organizer.WithHistory(history.New(filepath.Join(t.TempDir(), "history.json"))),
	)

	runs := make(chan *organizer.Result, 4)
	w, err := New(dir, org,
		WithDebounce(50*time.Millisecond),
		WithOnRun(func(r *organizer.Result, err error) {
			if err == nil {
				runs <- r
			}
		}))
	require.NoError(t, err)
	startWatcher(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scan-05-MAY-2021.pdf"), []byte("pdf"), 0644))

	select {
	case r := <-runs:
		assert.Equal(t, 1, r.Moved)
	case <-time.After(3 * time.Second):
		t.Fatal("organize run did not happen")
	}
	assert.FileExists(t, filepath.Join(dir, "2021", "scan-05-MAY-2021.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "scan-05-MAY-2021.pdf"))
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	w, err := New(t.TempDir(), &countingRunner{})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
