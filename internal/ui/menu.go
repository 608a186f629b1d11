package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	screen string
	title  string
	desc   string
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }

var menuItems = []menuItem{
	{screen: "onboarding", title: "✨ Onboarding", desc: "Welcome page"},
	{screen: "login", title: "🔑 Login", desc: "Email and password sign in"},
	{screen: "signup", title: "📝 Sign Up", desc: "Registration form with validation"},
	{screen: "chats", title: "💬 Chats", desc: "Chat list and conversations"},
	{screen: "settings", title: "⚙️  Settings", desc: "Settings menu"},
	{screen: "plans", title: "💳 Subscription Plans", desc: "Pick a billing period"},
	{screen: "feedback", title: "⭐ Feedback", desc: "Rate the app"},
}

type MenuModel struct {
	deps         Deps
	list         list.Model
	windowWidth  int
	windowHeight int
}

// NewMenuModel creates the main menu listing every screen.
func NewMenuModel(deps Deps) MenuModel {
	items := make([]list.Item, len(menuItems))
	for i, item := range menuItems {
		items[i] = item
	}

	return MenuModel{
		deps:         deps,
		list:         newList("Stencil - Screen Templates", items),
		windowWidth:  80,
		windowHeight: 30,
	}
}

// NewScreen builds the screen registered under name.
func NewScreen(name string, deps Deps) (tea.Model, error) {
	switch name {
	case "menu":
		return NewMenuModel(deps), nil
	case "onboarding":
		return NewOnboardingModel(deps), nil
	case "login":
		return NewLoginModel(deps), nil
	case "signup":
		return NewSignUpModel(deps), nil
	case "chats":
		return NewConversationsModel(deps, nil), nil
	case "settings":
		return NewSettingsModel(deps), nil
	case "plans":
		return NewPlansModel(deps), nil
	case "feedback":
		return NewFeedbackModel(deps), nil
	default:
		return nil, fmt.Errorf("unknown screen: %s", name)
	}
}

// backToMenu is where esc leads from every top-level screen.
func backToMenu(deps Deps, width, height int) (tea.Model, tea.Cmd) {
	return sized(NewMenuModel(deps), width, height)
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

		if msg.String() == "enter" {
			selectedItem, ok := m.list.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			screen, err := NewScreen(selectedItem.screen, m.deps)
			if err != nil {
				return m, nil
			}
			return sized(screen, m.windowWidth, m.windowHeight)
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	s := m.list.View() + "\n"
	s += helpStyle.Render("↑↓/jk: navigate • enter: open • q: quit")
	return s
}
