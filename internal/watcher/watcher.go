// Package watcher organizes a folder again whenever new files settle in it.
package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Nomadcxx/yearsort/internal/logging"
	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 2 * time.Second

// Runner organizes one folder. *organizer.Organizer satisfies it.
type Runner interface {
	Organize(folder string, reporter organizer.ProgressReporter) (*organizer.Result, error)
}

type Watcher struct {
	fsWatcher *fsnotify.Watcher
	folder    string
	runner    Runner
	debounce  time.Duration
	logger    *logging.Logger
	onRun     func(*organizer.Result, error)
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithOnRun registers a callback invoked after every organize run.
func WithOnRun(fn func(*organizer.Result, error)) Option {
	return func(w *Watcher) {
		w.onRun = fn
	}
}

// New starts watching folder. Only the folder itself is watched; year
// subfolders are not.
func New(folder string, runner Runner, opts ...Option) (*Watcher, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("unable to watch %s: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("unable to watch %s: not a directory", folder)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}
	if err := fsWatcher.Add(folder); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", folder, err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		folder:    folder,
		runner:    runner,
		debounce:  DefaultDebounce,
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Watcher) Folder() string {
	return w.folder
}

// Run handles events until ctx is cancelled. Organize runs happen on this
// goroutine, so they never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watcher", "watching folder",
		logging.F("folder", w.folder),
		logging.F("debounce", w.debounce.String()))

	// go1.23+ timers: Reset needs no drain.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	armed := false

	for {
		var fire <-chan time.Time
		if armed {
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("watcher", "file event",
				logging.F("file", event.Name),
				logging.F("op", event.Op.String()))
			timer.Reset(w.debounce)
			armed = true

		case <-fire:
			armed = false
			w.organize()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("watcher", "watch error", logging.F("error", err.Error()))
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

// relevant reports whether an event concerns a regular file that is still
// present in the folder.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	info, err := os.Stat(event.Name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (w *Watcher) organize() {
	result, err := w.runner.Organize(w.folder, nil)
	if err != nil {
		w.logger.Error("watcher", "organize run failed", err, logging.F("folder", w.folder))
	} else if result != nil && !result.FolderMissing {
		w.logger.Info("watcher", "organize run complete",
			logging.F("folder", w.folder),
			logging.F("moved", result.Moved),
			logging.F("skipped", result.Skipped))
	}
	if w.onRun != nil {
		w.onRun(result, err)
	}
}
