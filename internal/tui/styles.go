package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary      = lipgloss.Color("#E0A526") // Amber
	Secondary    = lipgloss.Color("#5FAFD7") // Steel blue
	FgPrimary    = lipgloss.Color("#FFFFFF")
	FgMuted      = lipgloss.Color("#888888")
	ErrorColor   = lipgloss.Color("#FF5555")
	SuccessColor = lipgloss.Color("#5FD787")
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(FgPrimary)
	mutedStyle    = lipgloss.NewStyle().Foreground(FgMuted)
	helpStyle     = lipgloss.NewStyle().Foreground(FgMuted).Italic(true)

	frameStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary)

	successDialogStyle = lipgloss.NewStyle().
				Padding(1, 3).
				Border(lipgloss.DoubleBorder()).
				BorderForeground(SuccessColor).
				Foreground(SuccessColor)

	errorDialogStyle = lipgloss.NewStyle().
				Padding(1, 3).
				Border(lipgloss.DoubleBorder()).
				BorderForeground(ErrorColor).
				Foreground(ErrorColor)
)
