package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/saravenpi/stencil/internal/models"
	"github.com/saravenpi/stencil/internal/state"
)

type MessagesModel struct {
	deps          Deps
	chatList      *state.ChatList
	chat          *state.Chat
	viewport      viewport.Model
	textarea      textarea.Model
	composing     bool
	windowWidth   int
	windowHeight  int
	viewportReady bool
}

// NewMessagesModel opens chat. chatList is handed back to the chat list
// screen on esc so the same chats are shown again.
func NewMessagesModel(deps Deps, chatList *state.ChatList, chat models.Chat) MessagesModel {
	vp := viewport.New(80, 20)

	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.CharLimit = 1000
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	container := state.NewChat(deps.LocalUser)
	container.SetChat(&chat)

	m := MessagesModel{
		deps:          deps,
		chatList:      chatList,
		chat:          container,
		viewport:      vp,
		textarea:      ta,
		windowWidth:   80,
		windowHeight:  30,
		viewportReady: true,
	}
	m.updateViewportContent()
	m.viewport.GotoBottom()
	return m
}

func (m MessagesModel) Init() tea.Cmd {
	return nil
}

func (m MessagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resize()
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if msg.String() == "esc" {
			if m.composing {
				m.composing = false
				m.textarea.Reset()
				m.textarea.Blur()
				m.chat.SetTypingMessage("")
				m.resize()
				return m, nil
			}
			return sized(NewConversationsModel(m.deps, m.chatList), m.windowWidth, m.windowHeight)
		}

		if m.composing {
			switch msg.String() {
			case "ctrl+s":
				if strings.TrimSpace(m.textarea.Value()) != "" {
					m.chat.Send()
					m.textarea.Reset()
				}
				return m, nil
			default:
				var cmd tea.Cmd
				m.textarea, cmd = m.textarea.Update(msg)
				if m.textarea.Value() != m.chat.State().TypingMessage {
					m.chat.SetTypingMessage(m.textarea.Value())
				}
				return m, cmd
			}
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "n", "c":
			m.composing = true
			m.resize()
			focus := m.textarea.Focus()
			return m, tea.Batch(focus, textarea.Blink)

		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *MessagesModel) resize() {
	headerHeight := 4
	textareaHeight := 5
	helpHeight := 2
	availableHeight := m.windowHeight - headerHeight - helpHeight

	m.viewport.Width = m.windowWidth - 4
	if m.composing {
		m.viewport.Height = availableHeight - textareaHeight
		m.textarea.SetWidth(m.windowWidth - 4)
	} else {
		m.viewport.Height = availableHeight
	}
}

func (m *MessagesModel) updateViewportContent() {
	st := m.chat.State()
	if !m.viewportReady || st.Chat == nil || len(st.Chat.Messages) == 0 {
		return
	}

	wrapWidth := m.viewport.Width
	if wrapWidth <= 0 {
		wrapWidth = 80
	}
	right := lipgloss.NewStyle().Align(lipgloss.Right).Width(wrapWidth)

	var content strings.Builder
	for i, message := range st.Chat.Messages {
		if i > 0 && message.ShowSenderName {
			content.WriteString("\n")
		}

		text := wordwrap.String(message.Text, wrapWidth-10)
		if message.IsMine {
			if message.ShowSenderName {
				content.WriteString(right.Render(messageHeaderStyle.Render(message.SenderName)) + "\n")
			}
			line := messageFromMeStyle.Render(text) + " " + messageHeaderStyle.Render(message.Time)
			content.WriteString(right.Render(line) + "\n")
		} else {
			if message.ShowSenderName {
				content.WriteString(messageHeaderStyle.Render(message.SenderName) + "\n")
			}
			line := messageFromOtherStyle.Render(text) + " " + messageHeaderStyle.Render(message.Time)
			content.WriteString(line + "\n")
		}
	}

	m.viewport.SetContent(content.String())
}

func (m MessagesModel) View() string {
	st := m.chat.State()
	if st.Chat == nil {
		return titleStyle.Render("💬 Chat") + "\n\n" + normalStyle.Render("  No chat selected.") + "\n"
	}

	s := titleStyle.Render(fmt.Sprintf("💬 %s", st.Chat.UserName)) + "\n"

	if len(st.Chat.Messages) == 0 {
		s += normalStyle.Render("  No messages in this conversation.") + "\n"
	} else {
		s += m.viewport.View() + "\n"
	}

	if m.composing {
		s += "\n" + inputStyle.Render("New Message:") + "\n"
		s += m.textarea.View() + "\n"
		s += helpStyle.Render("ctrl+s: send • esc: cancel")
	} else {
		scrollPercent := int(m.viewport.ScrollPercent() * 100)
		s += "\n" + helpStyle.Render(fmt.Sprintf("↑↓/jk: scroll • n: new message • esc: back • q: quit • %d%%", scrollPercent))
	}

	return s
}
