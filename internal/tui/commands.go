package tui

import (
	"github.com/Nomadcxx/yearsort/internal/organizer"
	tea "github.com/charmbracelet/bubbletea"
)

// runOrganize runs the organizer on the command goroutine. Progress is
// pushed to ch; ch is closed when the run ends.
func runOrganize(runner Runner, folder string, ch chan<- progressMsg) tea.Cmd {
	return func() tea.Msg {
		reporter := organizer.ProgressFunc(func(current, total int) {
			ch <- progressMsg{current: current, total: total}
		})
		result, err := runner.Organize(folder, reporter)
		close(ch)
		return organizeDoneMsg{result: result, err: err}
	}
}

// waitForProgress delivers the next progress message, or nothing once the
// run has finished.
func waitForProgress(ch <-chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func loadHistory(hist HistorySource) tea.Cmd {
	return func() tea.Msg {
		paths, err := hist.Load()
		return historyLoadedMsg{paths: paths, err: err}
	}
}
