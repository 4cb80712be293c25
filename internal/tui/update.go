package tui

import (
	"strings"

	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.screen == screenHistory && !m.historyEmpty {
			m.historyList.SetSize(m.listSize())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if m.screen != screenOrganizing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		return m.handleProgress(msg)

	case organizeDoneMsg:
		return m.handleOrganizeDone(msg)

	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		// A run cannot be interrupted.
		if m.screen == screenOrganizing {
			return m, nil
		}
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKeys(key)
	case screenPrompt:
		return m.handlePromptKeys(msg)
	case screenDialog:
		return m.handleDialogKeys(key)
	case screenHistory:
		return m.handleHistoryKeys(msg)
	}

	return m, nil
}

func (m Model) handleMenuKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(menuItems)-1 {
			m.selected++
		}
	case "1":
		m.selected = int(actionOrganize)
		return m.activate()
	case "2":
		m.selected = int(actionHistory)
		return m.activate()
	case "q", "3":
		return m, tea.Quit
	case "enter":
		return m.activate()
	}
	return m, nil
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	switch menuAction(m.selected) {
	case actionOrganize:
		m.screen = screenPrompt
		m.input.CursorEnd()
		return m, m.input.Focus()
	case actionHistory:
		return m, loadHistory(m.history)
	case actionExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.screen = screenMenu
		return m, nil
	case "enter":
		folder := strings.TrimSpace(m.input.Value())
		if folder == "" {
			return m, nil
		}
		m.input.Blur()
		return m.startOrganize(folder)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startOrganize(folder string) (tea.Model, tea.Cmd) {
	m.screen = screenOrganizing
	m.folder = folder
	m.current = 0
	m.total = 0
	m.percent = 0
	m.result = nil
	m.progress = make(chan progressMsg)

	return m, tea.Batch(
		runOrganize(m.runner, folder, m.progress),
		waitForProgress(m.progress),
		m.spinner.Tick,
	)
}

func (m Model) handleProgress(msg progressMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenOrganizing {
		return m, nil
	}
	m.current = msg.current
	m.total = msg.total
	m.percent = organizer.Percent(msg.current, msg.total)
	return m, waitForProgress(m.progress)
}

func (m Model) handleOrganizeDone(msg organizeDoneMsg) (tea.Model, tea.Cmd) {
	m.progress = nil
	m.result = msg.result

	if msg.err != nil {
		return m.showDialog(ErrorPrefix+msg.err.Error(), true), nil
	}
	if msg.result != nil && msg.result.FolderMissing {
		// Missing folder: logged by the organizer, no dialog.
		m.screen = screenMenu
		return m, nil
	}
	return m.showDialog(SuccessText, false), nil
}

func (m Model) showDialog(text string, isErr bool) Model {
	m.screen = screenDialog
	m.dialog = text
	m.dialogErr = isErr
	return m
}

func (m Model) handleDialogKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "esc", " ", "space", "q":
		m.screen = screenMenu
		m.dialog = ""
		m.dialogErr = false
	}
	return m, nil
}

func (m Model) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.showDialog(ErrorPrefix+msg.err.Error(), true), nil
	}

	m.screen = screenHistory
	m.historyEmpty = len(msg.paths) == 0
	if m.historyEmpty {
		return m, nil
	}

	items := make([]list.Item, len(msg.paths))
	for i, p := range msg.paths {
		items[i] = historyItem(p)
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	width, height := m.listSize()
	l := list.New(items, delegate, width, height)
	l.Title = "History"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	m.historyList = l
	return m, nil
}

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.screen = screenMenu
		return m, nil
	}
	if m.historyEmpty {
		return m, nil
	}

	var cmd tea.Cmd
	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}

func (m Model) listSize() (int, int) {
	width, height := m.width-8, m.height-8
	if width < 40 {
		width = 60
	}
	if height < 5 {
		height = 15
	}
	return width, height
}
