package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressBar is a single-line console progress bar. It satisfies
// organizer.ProgressReporter.
type ProgressBar struct {
	mu     sync.Mutex
	writer io.Writer
	label  string
	width  int
	last   int
}

func NewProgressBar(label string) *ProgressBar {
	return &ProgressBar{
		writer: Stdout,
		label:  label,
		width:  40,
		last:   -1,
	}
}

// SetWriter redirects output.
func (p *ProgressBar) SetWriter(w io.Writer) {
	p.mu.Lock()
	p.writer = w
	p.mu.Unlock()
}

// Report redraws the bar for current of total files.
func (p *ProgressBar) Report(current, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if total <= 0 {
		return
	}
	if current > total {
		current = total
	}
	percent := current * 100 / total

	if !IsTerminal() {
		// Non-terminal: one line per percentage change
		if percent != p.last {
			fmt.Fprintf(p.writer, "%s: %d/%d (%d%%)\n", p.label, current, total, percent)
			p.last = percent
		}
		return
	}

	filled := p.width * current / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)
	fmt.Fprintf(p.writer, "\r%s [%s] %d/%d (%d%%)", p.label, bar, current, total, percent)
	if current >= total {
		fmt.Fprintln(p.writer)
	}
	p.last = percent
}
