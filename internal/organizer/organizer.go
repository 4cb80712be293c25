// Package organizer sorts the files of one folder into per-year subfolders
// based on a date found in each file name.
package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Nomadcxx/yearsort/internal/activity"
	"github.com/Nomadcxx/yearsort/internal/database"
	"github.com/Nomadcxx/yearsort/internal/history"
	"github.com/Nomadcxx/yearsort/internal/logging"
	"github.com/Nomadcxx/yearsort/internal/transfer"
	"github.com/Nomadcxx/yearsort/internal/yearparse"
)

const component = "organizer"

type Outcome string

const (
	OutcomeMoved   Outcome = "moved"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// FileResult is what happened to one file.
type FileResult struct {
	Name       string
	SourcePath string
	TargetPath string
	Year       string
	Pattern    string
	Outcome    Outcome
	SkipReason string
	Error      error
}

// Result summarises one Organize call.
type Result struct {
	Folder string
	// FolderMissing is set when the folder did not exist; nothing else is
	// filled in and no history is written.
	FolderMissing bool
	DryRun        bool
	Total         int
	Moved         int
	Skipped       int
	Files         []FileResult
	// Years counts moved files per year folder.
	Years    map[string]int
	Duration time.Duration
}

type Organizer struct {
	dryRun   bool
	mover    transfer.Mover
	history  *history.Store
	activity *activity.Logger
	ledger   *database.LedgerDB
	logger   *logging.Logger
}

func NewOrganizer(options ...func(*Organizer)) *Organizer {
	o := &Organizer{
		mover:   transfer.New(transfer.BackendAuto),
		history: history.New(history.DefaultFile),
		logger:  logging.Nop(),
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}

// WithDryRun computes targets without creating folders, moving files or
// recording history.
func WithDryRun(dryRun bool) func(*Organizer) {
	return func(o *Organizer) {
		o.dryRun = dryRun
	}
}

func WithMover(m transfer.Mover) func(*Organizer) {
	return func(o *Organizer) {
		if m != nil {
			o.mover = m
		}
	}
}

func WithHistory(h *history.Store) func(*Organizer) {
	return func(o *Organizer) {
		if h != nil {
			o.history = h
		}
	}
}

// WithActivity records every file outcome. Write failures are logged only.
func WithActivity(a *activity.Logger) func(*Organizer) {
	return func(o *Organizer) {
		o.activity = a
	}
}

// WithLedger records every move. Write failures are logged only.
func WithLedger(db *database.LedgerDB) func(*Organizer) {
	return func(o *Organizer) {
		o.ledger = db
	}
}

func WithLogger(l *logging.Logger) func(*Organizer) {
	return func(o *Organizer) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o *Organizer) DryRun() bool {
	return o.dryRun
}

// Organize moves every dated file directly inside folder into folder/<year>.
//
// A missing folder is logged and reported through Result.FolderMissing with
// a nil error. Any mkdir, move or history failure stops the run and is
// returned; files already moved stay where they are.
func (o *Organizer) Organize(folder string, reporter ProgressReporter) (*Result, error) {
	start := time.Now()
	result := &Result{
		Folder: folder,
		DryRun: o.dryRun,
		Years:  make(map[string]int),
	}

	if _, err := os.Stat(folder); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			o.logger.Warn(component, "folder does not exist", logging.F("folder", folder))
			result.FolderMissing = true
			return result, nil
		}
		return result, fmt.Errorf("unable to access folder: %w", err)
	}

	files, err := listFiles(folder)
	if err != nil {
		return result, err
	}
	result.Total = len(files)
	o.logger.Info(component, "organizing folder",
		logging.F("folder", folder), logging.F("files", result.Total), logging.F("dry_run", o.dryRun))

	for i, name := range files {
		fr, err := o.organizeFile(folder, name)
		result.Files = append(result.Files, fr)
		if err != nil {
			result.Duration = time.Since(start)
			return result, err
		}

		switch fr.Outcome {
		case OutcomeMoved:
			result.Moved++
			result.Years[fr.Year]++
		case OutcomeSkipped:
			result.Skipped++
		}

		if reporter != nil {
			reporter.Report(i+1, result.Total)
		}
	}

	if !o.dryRun {
		if err := o.history.Save(folder); err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("unable to record history: %w", err)
		}
	}

	result.Duration = time.Since(start)
	o.logger.Info(component, "files organized",
		logging.F("folder", folder), logging.F("moved", result.Moved), logging.F("skipped", result.Skipped))
	return result, nil
}

func (o *Organizer) organizeFile(folder, name string) (FileResult, error) {
	fr := FileResult{
		Name:       name,
		SourcePath: filepath.Join(folder, name),
	}

	match, ok := yearparse.Match(name)
	if !ok {
		fr.Outcome = OutcomeSkipped
		fr.SkipReason = "no valid date found in the name"
		o.logger.Info(component, "skipped file", logging.F("file", name), logging.F("reason", fr.SkipReason))
		o.recordActivity(folder, fr)
		return fr, nil
	}

	fr.Year = match.Year
	fr.Pattern = match.Pattern
	yearDir := filepath.Join(folder, match.Year)
	fr.TargetPath = filepath.Join(yearDir, name)

	if !o.dryRun {
		if err := ensureDir(yearDir); err != nil {
			return o.fail(folder, fr, fmt.Errorf("unable to create year folder %s: %w", yearDir, err))
		}
		moved, err := o.mover.Move(fr.SourcePath, fr.TargetPath)
		if err != nil {
			return o.fail(folder, fr, fmt.Errorf("unable to move %s: %w", name, err))
		}
		if moved != nil && moved.Warning != nil {
			o.logger.Warn(component, "file moved with warning",
				logging.F("file", name), logging.F("backend", moved.Backend), logging.F("warning", moved.Warning.Error()))
		}
	}

	fr.Outcome = OutcomeMoved
	o.logger.Info(component, "moved file",
		logging.F("file", name), logging.F("year", fr.Year), logging.F("pattern", fr.Pattern), logging.F("dry_run", o.dryRun))
	o.recordActivity(folder, fr)
	o.recordLedger(folder, fr)
	return fr, nil
}

func (o *Organizer) fail(folder string, fr FileResult, err error) (FileResult, error) {
	fr.Outcome = OutcomeFailed
	fr.Error = err
	o.logger.Error(component, "organize failed", err, logging.F("file", fr.Name))
	o.recordActivity(folder, fr)
	return fr, err
}

func (o *Organizer) recordActivity(folder string, fr FileResult) {
	if o.activity == nil {
		return
	}
	entry := activity.Entry{
		Folder:  folder,
		Source:  fr.SourcePath,
		Target:  fr.TargetPath,
		Year:    fr.Year,
		Pattern: fr.Pattern,
		DryRun:  o.dryRun,
	}
	switch fr.Outcome {
	case OutcomeMoved:
		entry.Action = activity.ActionMove
	case OutcomeSkipped:
		entry.Action = activity.ActionSkip
	default:
		entry.Action = activity.ActionFail
	}
	if fr.Error != nil {
		entry.Error = fr.Error.Error()
	}
	if err := o.activity.Log(entry); err != nil {
		o.logger.Warn(component, "failed to write activity entry", logging.F("file", fr.Name), logging.F("error", err))
	}
}

func (o *Organizer) recordLedger(folder string, fr FileResult) {
	if o.ledger == nil {
		return
	}
	err := o.ledger.RecordMove(database.MoveRecord{
		Folder:     folder,
		FileName:   fr.Name,
		Year:       fr.Year,
		Pattern:    fr.Pattern,
		SourcePath: fr.SourcePath,
		TargetPath: fr.TargetPath,
		DryRun:     o.dryRun,
	})
	if err != nil {
		o.logger.Warn(component, "failed to record move", logging.F("file", fr.Name), logging.F("error", err))
	}
}

// listFiles returns the names of regular files directly inside folder, in
// os.ReadDir order. Symlinks count when they point at a regular file.
func listFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("unable to list folder: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := os.Stat(filepath.Join(folder, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// ensureDir is check-then-create; safe only because files are processed one
// at a time.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
