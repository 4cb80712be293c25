// Package activity keeps a per-day JSONL record of every file the organizer
// touched, one line per outcome.
package activity

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

type Action string

const (
	ActionMove Action = "move"
	ActionSkip Action = "skip"
	ActionFail Action = "fail"
)

type Entry struct {
	Timestamp time.Time `json:"ts"`
	Action    Action    `json:"action"`
	Folder    string    `json:"folder"`
	Source    string    `json:"source"`
	Target    string    `json:"target,omitempty"`
	Year      string    `json:"year,omitempty"`
	Pattern   string    `json:"pattern,omitempty"`
	DryRun    bool      `json:"dry_run,omitempty"`
	Error     string    `json:"error,omitempty"`
}

const (
	filePrefix = "activity-"
	fileSuffix = ".jsonl"
	dateLayout = "2006-01-02"
)

type Logger struct {
	mu          sync.Mutex
	logDir      string
	currentFile *os.File
	currentDate string
	now         func() time.Time
}

// NewLogger stores files under <dir>/activity.
func NewLogger(dir string) (*Logger, error) {
	logDir := filepath.Join(dir, "activity")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	return &Logger{logDir: logDir, now: time.Now}, nil
}

func (l *Logger) Log(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	today := now.Format(dateLayout)
	if l.currentDate != today || l.currentFile == nil {
		if err := l.openDay(today); err != nil {
			return err
		}
	}

	_, err = l.currentFile.Write(append(line, '\n'))
	return err
}

func (l *Logger) openDay(date string) error {
	if l.currentFile != nil {
		l.currentFile.Close()
		l.currentFile = nil
	}

	f, err := os.OpenFile(filepath.Join(l.logDir, filePrefix+date+fileSuffix), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	l.currentFile = f
	l.currentDate = date
	return nil
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentFile != nil {
		err := l.currentFile.Close()
		l.currentFile = nil
		return err
	}
	return nil
}

func (l *Logger) GetLogDir() string {
	return l.logDir
}

// PruneOld removes day files older than retentionDays.
func (l *Logger) PruneOld(retentionDays int) error {
	cutoff := l.now().AddDate(0, 0, -retentionDays)

	files, err := l.dayFiles()
	if err != nil {
		return err
	}
	for _, name := range files {
		day, err := time.Parse(dateLayout, strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(l.logDir, name))
		}
	}
	return nil
}

// GetRecentEntries returns up to limit entries, newest first.
func (l *Logger) GetRecentEntries(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := l.dayFiles()
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	var results []Entry
	for _, name := range files {
		entries, err := readEntries(filepath.Join(l.logDir, name))
		if err != nil {
			continue
		}
		for i := len(entries) - 1; i >= 0; i-- {
			results = append(results, entries[i])
			if len(results) >= limit {
				return results, nil
			}
		}
	}
	return results, nil
}

func (l *Logger) dayFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(l.logDir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range dirEntries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), filePrefix) && strings.HasSuffix(e.Name(), fileSuffix) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// readEntries skips lines that don't decode.
func readEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}
