package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/saravenpi/stencil/internal/state"
)

// profileHeight is the number of lines the profile header takes.
const profileHeight = 4

type settingItem struct {
	setting state.Setting
}

func (i settingItem) FilterValue() string { return i.setting.Title() }
func (i settingItem) Title() string       { return i.setting.Title() }
func (i settingItem) Description() string { return "" }

type logoutItem struct{}

func (logoutItem) FilterValue() string { return "Log Out" }
func (logoutItem) Title() string       { return "🚪 Log Out" }
func (logoutItem) Description() string { return "" }

type SettingsModel struct {
	deps         Deps
	settings     *state.Settings
	list         list.Model
	status       string
	windowWidth  int
	windowHeight int
}

func NewSettingsModel(deps Deps) SettingsModel {
	settings := state.AllSettings()
	items := make([]list.Item, 0, len(settings)+1)
	for _, s := range settings {
		items = append(items, settingItem{setting: s})
	}
	items = append(items, logoutItem{})

	delegate := newDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := newList("Settings", items)
	l.SetDelegate(delegate)

	return SettingsModel{
		deps:         deps,
		settings:     state.NewSettings(deps.LocalUser),
		list:         l,
		windowWidth:  80,
		windowHeight: 30,
	}
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4 - profileHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			return backToMenu(m.deps, m.windowWidth, m.windowHeight)
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case settingItem:
				m.settings.SelectSetting(item.setting)
				m.status = ""
			case logoutItem:
				m.settings.Logout()
				m.status = "Log out requested"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m SettingsModel) renderProfile() string {
	st := m.settings.State()
	name := selectedStyle.Render(st.UserName)
	handle := helpStyle.Render(st.Handle())
	return lipgloss.NewStyle().PaddingLeft(2).Render("👤 "+name+"\n"+handle) + "\n"
}

func (m SettingsModel) View() string {
	s := m.renderProfile() + "\n"
	s += m.list.View() + "\n"
	if m.status != "" {
		s += statusStyle.Render(m.status) + "\n"
	}
	s += helpStyle.Render("↑↓/jk: navigate • enter: open • esc: back • q: quit")
	return s
}
