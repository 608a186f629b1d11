package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	onboardingHeadline = "Create a prototype in just a few minutes."
	onboardingBody     = "Enjoy this pre-made components and worry only about creating the best product ever."
)

type OnboardingModel struct {
	deps         Deps
	windowWidth  int
	windowHeight int
}

func NewOnboardingModel(deps Deps) OnboardingModel {
	return OnboardingModel{deps: deps, windowWidth: 80, windowHeight: 30}
}

func (m OnboardingModel) Init() tea.Cmd {
	return nil
}

func (m OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			return backToMenu(m.deps, m.windowWidth, m.windowHeight)
		case "enter", "n":
			return sized(NewLoginModel(m.deps), m.windowWidth, m.windowHeight)
		}
	}
	return m, nil
}

func (m OnboardingModel) View() string {
	width := min(m.windowWidth-4, 60)
	if width <= 0 {
		width = 60
	}

	body := titleStyle.Render(wordwrap.String(onboardingHeadline, width)) + "\n"
	body += normalStyle.Render(wordwrap.String(onboardingBody, width)) + "\n\n"
	body += buttonStyle.Render("Next")

	page := lipgloss.NewStyle().Padding(1, 2).Render(body)
	return page + "\n\n" + helpStyle.Render("enter: next • esc: back • q: quit")
}
