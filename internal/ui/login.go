package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/saravenpi/stencil/internal/state"
)

type LoginModel struct {
	deps          Deps
	login         *state.Login
	emailInput    textinput.Model
	passwordInput textinput.Model
	focusIndex    int
	windowWidth   int
	windowHeight  int
}

func NewLoginModel(deps Deps) LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "Email"
	emailInput.Focus()
	emailInput.CharLimit = 100
	emailInput.Width = 50

	passwordInput := textinput.New()
	passwordInput.Placeholder = "Password"
	passwordInput.CharLimit = 100
	passwordInput.Width = 50

	m := LoginModel{
		deps:          deps,
		login:         state.NewLogin(),
		emailInput:    emailInput,
		passwordInput: passwordInput,
	}
	m.applyVisibility()
	return m
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) applyVisibility() {
	applyEcho(&m.passwordInput, m.login.State().PasswordVisible)
}

// applyEcho masks input unless visible is set.
func applyEcho(input *textinput.Model, visible bool) {
	if visible {
		input.EchoMode = textinput.EchoNormal
		return
	}
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
}

func (m *LoginModel) updateFocus() {
	m.emailInput.Blur()
	m.passwordInput.Blur()
	if m.focusIndex == 0 {
		m.emailInput.Focus()
	} else {
		m.passwordInput.Focus()
	}
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return backToMenu(m.deps, m.windowWidth, m.windowHeight)

		case "tab", "shift+tab", "up", "down":
			m.focusIndex = 1 - m.focusIndex
			m.updateFocus()
			return m, nil

		case "ctrl+t":
			m.login.SetPasswordVisible(!m.login.State().PasswordVisible)
			m.applyVisibility()
			return m, nil

		case "ctrl+n":
			return sized(NewSignUpModel(m.deps), m.windowWidth, m.windowHeight)

		case "enter":
			m.login.Login()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
		if v := m.emailInput.Value(); v != m.login.State().Email.Value {
			m.login.SetEmail(v)
		}
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		if v := m.passwordInput.Value(); v != m.login.State().Password.Value {
			m.login.SetPassword(v)
		}
	}
	return m, cmd
}

func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Welcome!") + "\n\n")

	renderInput := func(input textinput.Model, label string, focused bool) {
		style := blurredStyle
		if focused {
			style = focusedStyle
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString(input.View() + "\n\n")
	}

	renderInput(m.emailInput, "Email Address", m.focusIndex == 0)
	renderInput(m.passwordInput, "Password", m.focusIndex == 1)
	b.WriteString(helpStyle.Render("Forgot password?") + "\n\n")

	b.WriteString(buttonStyle.Render("Login") + "\n\n")
	b.WriteString(normalStyle.Render("Not a member? ") + selectedStyle.Render("Register now (ctrl+n)") + "\n\n")

	visibility := "show"
	if m.login.State().PasswordVisible {
		visibility = "hide"
	}
	b.WriteString(helpStyle.Render("tab/↑↓: navigate • ctrl+t: " + visibility + " password • enter: login • esc: back"))

	return b.String()
}
