// Package ui holds console output helpers for the yearsort CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Stdout and Stderr are swapped out by tests.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr

	isTerminal   = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	colorEnabled = true

	printer = message.NewPrinter(language.English)
)

// DisableColors disables all color output
func DisableColors() {
	colorEnabled = false
	isTerminal = false
	initStyles()
}

// IsTerminal checks if stdout is a terminal
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// Section prints a section header
func Section(title string) {
	fmt.Fprintln(Stdout)
	if IsTerminal() {
		fmt.Fprintln(Stdout, headerStyle.Render("━━━ "+strings.ToUpper(title)+" ━━━"))
	} else {
		fmt.Fprintln(Stdout, strings.ToUpper(title))
		fmt.Fprintln(Stdout, strings.Repeat("=", len(title)+6))
	}
}

// FormatCount groups thousands: 12345 -> "12,345".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatFiles renders "1 file" / "1,204 files".
func FormatFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return FormatCount(n) + " files"
}

// FormatDuration formats duration to human-readable format
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// FormatWhen renders a timestamp relative to now ("3 minutes ago").
func FormatWhen(t time.Time) string {
	return humanize.Time(t)
}
