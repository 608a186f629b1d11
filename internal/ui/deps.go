package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/saravenpi/stencil/internal/state"
)

// Deps is what every screen needs to build its containers.
type Deps struct {
	LocalUser string
	Chats     state.ChatSource
}

// stateChangedMsg reports that a watched container published a snapshot.
type stateChangedMsg struct {
	source string
}

// listenForState waits for the next snapshot on ch. It returns nil once the
// watch is stopped so the command goroutine exits.
func listenForState[S any](ch <-chan S, source string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{source: source}
	}
}

// sized hands the current window size to a freshly built screen.
func sized(m tea.Model, width, height int) (tea.Model, tea.Cmd) {
	if width <= 0 {
		return m, m.Init()
	}
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated, tea.Batch(updated.Init(), cmd)
}

func newDelegate() list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("5")).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("8"))
	return delegate
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newDelegate(), 80, 20)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}
