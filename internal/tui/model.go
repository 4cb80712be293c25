// Package tui is the interactive terminal shell: organize a folder with a
// progress bar, browse the history of organized folders, exit.
package tui

import (
	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	SuccessText  = "Files have been successfully organized by year!"
	ErrorPrefix  = "An error occurred: "
	EmptyHistory = "No history available."
)

type screen int

const (
	screenMenu screen = iota
	screenPrompt
	screenOrganizing
	screenDialog
	screenHistory
)

type menuAction int

const (
	actionOrganize menuAction = iota
	actionHistory
	actionExit
)

var menuItems = []string{
	"Organize folder",
	"View history",
	"Exit",
}

// Runner organizes one folder. *organizer.Organizer satisfies it.
type Runner interface {
	Organize(folder string, reporter organizer.ProgressReporter) (*organizer.Result, error)
}

// HistorySource lists organized folders. *history.Store satisfies it.
type HistorySource interface {
	Load() ([]string, error)
}

// Model owns all shell state.
type Model struct {
	screen   screen
	width    int
	height   int
	selected int

	runner  Runner
	history HistorySource

	// Organize
	input    textinput.Model
	bar      progress.Model
	spinner  spinner.Model
	folder   string
	current  int
	total    int
	percent  int
	progress chan progressMsg
	result   *organizer.Result

	// Dialog
	dialog    string
	dialogErr bool

	// History
	historyList  list.Model
	historyEmpty bool
}

// Messages
type progressMsg struct {
	current int
	total   int
}

type organizeDoneMsg struct {
	result *organizer.Result
	err    error
}

type historyLoadedMsg struct {
	paths []string
	err   error
}

type historyItem string

func (i historyItem) Title() string       { return string(i) }
func (i historyItem) Description() string { return "" }
func (i historyItem) FilterValue() string { return string(i) }

// New builds the shell. defaultFolder seeds the folder prompt.
func New(runner Runner, hist HistorySource, defaultFolder string) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/folder"
	ti.Width = 60
	ti.CharLimit = 4096
	ti.SetValue(defaultFolder)
	ti.PromptStyle = selectedStyle
	ti.TextStyle = itemStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	bar := progress.New(progress.WithGradient(string(Primary), string(Secondary)))
	bar.Width = 50

	return Model{
		screen:  screenMenu,
		runner:  runner,
		history: hist,
		input:   ti,
		bar:     bar,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the shell on the alternate screen and blocks until exit.
func Run(runner Runner, hist HistorySource, defaultFolder string) error {
	p := tea.NewProgram(New(runner, hist, defaultFolder), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
