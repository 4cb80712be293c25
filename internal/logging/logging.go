// Package logging provides component-tagged structured logging with optional
// rotated file output.
//
// Lines look like:
//
//	2024-12-31T10:00:00Z [INFO] [organizer] moved file | file=a.txt | year=2024
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level; unknown strings mean info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is a key-value pair appended to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type Config struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`        // empty = no file output
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate above this size
	MaxBackups int    `mapstructure:"max_backups"`
	// Console mirrors lines to stderr. The terminal shell turns it off
	// because it owns the screen.
	Console bool `mapstructure:"-"`
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 5,
		Console:    true,
	}
}

type Logger struct {
	mu      sync.Mutex
	level   Level
	file    *rotatingFile
	writers []io.Writer
	now     func() time.Time
}

// New creates a Logger. cfg.File may start with ~.
func New(cfg Config) (*Logger, error) {
	l := &Logger{
		level: ParseLevel(cfg.Level),
		now:   time.Now,
	}
	if cfg.Console {
		l.writers = append(l.writers, os.Stderr)
	}

	if cfg.File != "" {
		path, err := expandHome(cfg.File)
		if err != nil {
			return nil, err
		}
		f, err := openRotating(path, int64(cfg.MaxSizeMB)*1024*1024, cfg.MaxBackups)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.writers = append(l.writers, f)
	}

	return l, nil
}

// NewWriter logs to w only. Used by tests and the watch command.
func NewWriter(w io.Writer, level Level) *Logger {
	return &Logger{level: level, writers: []io.Writer{w}, now: time.Now}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{level: LevelError + 1, now: time.Now}
}

func (l *Logger) log(level Level, component, msg string, err error, fields ...Field) {
	if l == nil || level < l.level {
		return
	}

	var sb strings.Builder
	sb.WriteString(l.now().Format(time.RFC3339))
	sb.WriteString(" [")
	sb.WriteString(level.String())
	sb.WriteString("] [")
	sb.WriteString(component)
	sb.WriteString("] ")
	sb.WriteString(msg)
	if err != nil {
		sb.WriteString(" | error=")
		sb.WriteString(err.Error())
	}
	for _, f := range fields {
		fmt.Fprintf(&sb, " | %s=%v", f.Key, f.Value)
	}
	sb.WriteByte('\n')
	line := []byte(sb.String())

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.writers {
		w.Write(line)
	}
}

func (l *Logger) Debug(component, msg string, fields ...Field) {
	l.log(LevelDebug, component, msg, nil, fields...)
}

func (l *Logger) Info(component, msg string, fields ...Field) {
	l.log(LevelInfo, component, msg, nil, fields...)
}

func (l *Logger) Warn(component, msg string, fields ...Field) {
	l.log(LevelWarn, component, msg, nil, fields...)
}

func (l *Logger) Error(component, msg string, err error, fields ...Field) {
	l.log(LevelError, component, msg, err, fields...)
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) GetLevel() Level {
	return l.level
}

// FilePath returns the log file path, or "" without file output.
func (l *Logger) FilePath() string {
	if l.file == nil {
		return ""
	}
	return l.file.path
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
