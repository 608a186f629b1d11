package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/saravenpi/stencil/internal/state"
)

const (
	signUpName = iota
	signUpEmail
	signUpPassword
	signUpConfirm
	signUpTerms
	signUpButton
	signUpFocusCount
)

type SignUpModel struct {
	deps         Deps
	signUp       *state.SignUp
	inputs       []textinput.Model
	focusIndex   int
	windowWidth  int
	windowHeight int
}

// NewSignUpModel creates the registration form.
func NewSignUpModel(deps Deps) SignUpModel {
	placeholders := []string{"Name", "Email", "Password", "Confirm Password"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = p
		inputs[i].CharLimit = 100
		inputs[i].Width = 50
	}
	inputs[signUpName].Focus()

	m := SignUpModel{
		deps:   deps,
		signUp: state.NewSignUp(),
		inputs: inputs,
	}
	m.applyVisibility()
	return m
}

func (m SignUpModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignUpModel) applyVisibility() {
	st := m.signUp.State()
	applyEcho(&m.inputs[signUpPassword], st.PasswordVisible)
	applyEcho(&m.inputs[signUpConfirm], st.ConfirmPasswordVisible)
}

func (m *SignUpModel) updateFocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focusIndex < len(m.inputs) {
		m.inputs[m.focusIndex].Focus()
	}
}

// forward pushes the focused input's value into the container when it changed.
func (m *SignUpModel) forward() {
	st := m.signUp.State()
	v := m.inputs[m.focusIndex].Value()
	switch m.focusIndex {
	case signUpName:
		if v != st.Name.Value {
			m.signUp.SetName(v)
		}
	case signUpEmail:
		if v != st.Email.Value {
			m.signUp.SetEmail(v)
		}
	case signUpPassword:
		if v != st.Password.Value {
			m.signUp.SetPassword(v)
		}
	case signUpConfirm:
		if v != st.ConfirmPassword.Value {
			m.signUp.SetConfirmPassword(v)
		}
	}
}

func (m SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case "tab", "shift+tab", "down", "up":
			if msg.String() == "up" || msg.String() == "shift+tab" {
				m.focusIndex--
				if m.focusIndex < 0 {
					m.focusIndex = signUpFocusCount - 1
				}
			} else {
				m.focusIndex++
				if m.focusIndex >= signUpFocusCount {
					m.focusIndex = 0
				}
			}
			m.updateFocus()
			return m, nil

		case "ctrl+t":
			st := m.signUp.State()
			switch m.focusIndex {
			case signUpPassword:
				m.signUp.SetPasswordVisible(!st.PasswordVisible)
			case signUpConfirm:
				m.signUp.SetConfirmPasswordVisible(!st.ConfirmPasswordVisible)
			}
			m.applyVisibility()
			return m, nil

		case " ", "space":
			if m.focusIndex == signUpTerms {
				m.signUp.SetTermsAccepted(!m.signUp.State().TermsAccepted)
				return m, nil
			}

		case "enter":
			if m.focusIndex == signUpTerms {
				m.signUp.SetTermsAccepted(!m.signUp.State().TermsAccepted)
				return m, nil
			}
			if m.signUp.State().IsFormValid() {
				m.signUp.SignUp()
			}
			return m, nil
		}
	}

	if m.focusIndex >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	m.forward()
	return m, cmd
}

func (m SignUpModel) View() string {
	var b strings.Builder
	st := m.signUp.State()

	b.WriteString(titleStyle.Render("Create Account") + "\n\n")

	labels := []string{"Name:", "Email:", "Password:", "Confirm Password:"}
	errs := []string{st.NameError(), st.EmailError(), st.PasswordError(), st.ConfirmPasswordError()}

	for i, input := range m.inputs {
		style := blurredStyle
		if m.focusIndex == i {
			style = focusedStyle
		}
		b.WriteString(style.Render(labels[i]) + "\n")
		b.WriteString(input.View() + "\n")
		if errs[i] != "" {
			b.WriteString(errorStyle.Render("  "+errs[i]) + "\n")
		}
		b.WriteString("\n")
	}

	box := "[ ]"
	if st.TermsAccepted {
		box = "[x]"
	}
	termsStyle := blurredStyle
	if m.focusIndex == signUpTerms {
		termsStyle = focusedStyle
	}
	b.WriteString(termsStyle.Render(box+" I agree to the Terms and Conditions") + "\n\n")

	button := disabledButtonStyle
	if st.IsFormValid() {
		button = buttonStyle
	}
	label := "Sign Up"
	if m.focusIndex == signUpButton {
		label = "› Sign Up ‹"
	}
	b.WriteString(button.Render(label) + "\n\n")

	b.WriteString(helpStyle.Render("tab/↑↓: navigate • space: toggle terms • ctrl+t: show/hide password • enter: sign up • esc: back"))

	return b.String()
}
