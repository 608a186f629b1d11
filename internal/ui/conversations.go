package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/saravenpi/stencil/internal/models"
	"github.com/saravenpi/stencil/internal/state"
)

const previewWidth = 50

type chatItem struct {
	chat models.Chat
}

func (i chatItem) Title() string {
	if n := i.chat.UnreadCount(); n > 0 {
		return fmt.Sprintf("%s (%d)", i.chat.UserName, n)
	}
	return i.chat.UserName
}

func (i chatItem) Description() string {
	last, ok := i.chat.LastMessage()
	if !ok {
		return "No messages"
	}
	preview := truncate.StringWithTail(last.Text, previewWidth, "...")
	if last.IsMine {
		preview = "You: " + preview
	}
	return fmt.Sprintf("%s • %s", last.Time, preview)
}

func (i chatItem) FilterValue() string {
	return i.chat.UserName
}

type ConversationsModel struct {
	deps         Deps
	chats        *state.ChatList
	list         list.Model
	search       textinput.Model
	searching    bool
	loading      bool
	spinner      spinner.Model
	updates      <-chan state.ChatListState
	stopWatch    func()
	windowWidth  int
	windowHeight int
}

// NewConversationsModel shows the chat list. Passing an existing container
// keeps the same chats when coming back from a conversation.
func NewConversationsModel(deps Deps, chats *state.ChatList) ConversationsModel {
	if chats == nil {
		chats = state.NewChatList(deps.Chats)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusStyle

	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "🔍 "
	search.CharLimit = 100
	search.Width = 40
	search.SetValue(chats.State().SearchQuery)

	updates, stop := chats.Watch()

	m := ConversationsModel{
		deps:         deps,
		chats:        chats,
		list:         newList("Chats", nil),
		search:       search,
		spinner:      s,
		updates:      updates,
		stopWatch:    stop,
		windowWidth:  80,
		windowHeight: 30,
	}
	m.syncItems()
	return m
}

func (m ConversationsModel) Init() tea.Cmd {
	return listenForState(m.updates, "chats")
}

// refreshCmd reloads the mock chats off the UI goroutine; the new snapshot
// arrives through the watch channel.
func (m ConversationsModel) refreshCmd() tea.Cmd {
	chats := m.chats
	return func() tea.Msg {
		chats.LoadChats()
		return nil
	}
}

// syncItems rebuilds list items from the current snapshot. The search query
// does not filter the list.
func (m *ConversationsModel) syncItems() {
	st := m.chats.State()
	items := make([]list.Item, len(st.Chats))
	for i, chat := range st.Chats {
		items[i] = chatItem{chat: chat}
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("Chats - %d unread", st.UnreadTotal())
}

func (m ConversationsModel) leave() {
	if m.stopWatch != nil {
		m.stopWatch()
	}
}

func (m ConversationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 6)
		m.search.Width = msg.Width - 10
		return m, nil

	case stateChangedMsg:
		m.loading = false
		m.syncItems()
		return m, listenForState(m.updates, "chats")

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.leave()
			return m, tea.Quit
		}

		if m.searching {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "q":
			m.leave()
			return m, tea.Quit

		case "esc":
			m.leave()
			return backToMenu(m.deps, m.windowWidth, m.windowHeight)

		case "/":
			m.searching = true
			cmd := m.search.Focus()
			return m, cmd

		case "x":
			m.chats.ClearSearch()
			m.search.Reset()
			return m, nil

		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.refreshCmd())

		case "enter":
			if m.loading {
				return m, nil
			}
			if item, ok := m.list.SelectedItem().(chatItem); ok {
				m.leave()
				return sized(NewMessagesModel(m.deps, m.chats, item.chat), m.windowWidth, m.windowHeight)
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m ConversationsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.Reset()
		m.chats.ClearSearch()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.chats.State().SearchQuery {
		m.chats.SetSearchQuery(m.search.Value())
	}
	return m, cmd
}

func (m ConversationsModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s Loading chats...\n", m.spinner.View())
	}

	s := m.search.View() + "\n\n"

	if len(m.chats.State().Chats) == 0 {
		s += titleStyle.Render("Chats") + "\n\n"
		s += normalStyle.Render("  No chats yet.") + "\n"
		s += "\n" + helpStyle.Render("r: refresh • esc: back • q: quit")
		return s
	}

	s += m.list.View() + "\n"
	if m.searching {
		s += helpStyle.Render("enter: done • esc: clear search")
	} else {
		s += helpStyle.Render("↑↓/jk: navigate • enter: open • /: search • x: clear search • r: refresh • esc: back • q: quit")
	}
	return s
}
