package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var content string
	switch m.screen {
	case screenMenu:
		content = m.renderMenu()
	case screenPrompt:
		content = m.renderPrompt()
	case screenOrganizing:
		content = m.renderOrganizing()
	case screenDialog:
		content = m.renderDialog()
	case screenHistory:
		content = m.renderHistory()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Organize Files by Year"))
	b.WriteString("\n\n")
	b.WriteString(frameStyle.Render(content))
	if help := m.getHelpText(); help != "" {
		b.WriteString("\n" + helpStyle.Render(help))
	}
	b.WriteString("\n")

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

func (m Model) renderMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("▸ " + item))
		} else {
			b.WriteString(itemStyle.Render("  " + item))
		}
		if i < len(menuItems)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderPrompt() string {
	return "Folder to organize:\n\n" + m.input.View()
}

func (m Model) renderOrganizing() string {
	var b strings.Builder
	b.WriteString(m.spinner.View() + " Organizing " + mutedStyle.Render(m.folder))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(float64(m.percent) / 100))
	b.WriteString(fmt.Sprintf("\n\n%d%%", m.percent))
	if m.total > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%d/%d files)", m.current, m.total)))
	}
	return b.String()
}

func (m Model) renderDialog() string {
	style := successDialogStyle
	if m.dialogErr {
		style = errorDialogStyle
	}
	return style.Render(m.dialog)
}

func (m Model) renderHistory() string {
	if m.historyEmpty {
		return EmptyHistory
	}
	return m.historyList.View()
}

func (m Model) getHelpText() string {
	switch m.screen {
	case screenMenu:
		return "↑/↓: Navigate  •  Enter: Select  •  q: Quit"
	case screenPrompt:
		return "Enter: Organize  •  Esc: Back"
	case screenOrganizing:
		return "Please wait..."
	case screenDialog:
		return "Enter: OK"
	case screenHistory:
		return "↑/↓: Scroll  •  Esc: Close"
	}
	return ""
}
