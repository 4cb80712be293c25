package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	yearStyle    lipgloss.Style
	pathStyle    lipgloss.Style
	headerStyle  lipgloss.Style
)

func init() {
	initStyles()
}

func initStyles() {
	if !IsTerminal() {
		successStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle()
		warningStyle = lipgloss.NewStyle()
		infoStyle = lipgloss.NewStyle()
		dimStyle = lipgloss.NewStyle()
		yearStyle = lipgloss.NewStyle()
		pathStyle = lipgloss.NewStyle()
		headerStyle = lipgloss.NewStyle()
		return
	}

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	yearStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
}

func Success(text string) string {
	return successStyle.Render(text)
}

func Error(text string) string {
	return errorStyle.Render(text)
}

func Warning(text string) string {
	return warningStyle.Render(text)
}

func Info(text string) string {
	return infoStyle.Render(text)
}

func Dim(text string) string {
	return dimStyle.Render(text)
}

// Year renders a year folder name
func Year(text string) string {
	return yearStyle.Render(text)
}

func Path(text string) string {
	return pathStyle.Render(text)
}

// SuccessMsg prints a success message
func SuccessMsg(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, Success("✓")+" "+fmt.Sprintf(format, args...))
}

// ErrorMsg prints an error message to stderr
func ErrorMsg(format string, args ...interface{}) {
	fmt.Fprintln(Stderr, Error("✗")+" "+fmt.Sprintf(format, args...))
}

func WarningMsg(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, Warning("⚠")+" "+fmt.Sprintf(format, args...))
}

func InfoMsg(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, Info("ℹ")+" "+fmt.Sprintf(format, args...))
}
