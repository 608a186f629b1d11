package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/saravenpi/stencil/internal/state"
)

const (
	feedbackRating = iota
	feedbackLikes
	feedbackImprovements
	feedbackComment
	feedbackSubmit
	feedbackSectionCount
)

type FeedbackModel struct {
	deps          Deps
	feedback      *state.Feedback
	comment       textarea.Model
	section       int
	likeCursor    int
	improveCursor int
	windowWidth   int
	windowHeight  int
}

func NewFeedbackModel(deps Deps) FeedbackModel {
	ta := textarea.New()
	ta.Placeholder = "Tell us more..."
	ta.CharLimit = 500
	ta.SetHeight(3)
	ta.SetWidth(60)
	ta.ShowLineNumbers = false

	return FeedbackModel{
		deps:         deps,
		feedback:     state.NewFeedback(),
		comment:      ta,
		windowWidth:  80,
		windowHeight: 30,
	}
}

func (m FeedbackModel) Init() tea.Cmd {
	return nil
}

func (m *FeedbackModel) moveSection(delta int) tea.Cmd {
	m.section = (m.section + delta + feedbackSectionCount) % feedbackSectionCount
	if m.section == feedbackComment {
		return m.comment.Focus()
	}
	m.comment.Blur()
	return nil
}

func (m FeedbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.comment.SetWidth(min(msg.Width-4, 60))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return backToMenu(m.deps, m.windowWidth, m.windowHeight)
		case "tab":
			cmd := m.moveSection(1)
			return m, cmd
		case "shift+tab":
			cmd := m.moveSection(-1)
			return m, cmd
		}

		if m.section == feedbackComment {
			var cmd tea.Cmd
			m.comment, cmd = m.comment.Update(msg)
			if m.comment.Value() != m.feedback.State().Comment {
				m.feedback.SetComment(m.comment.Value())
			}
			return m, cmd
		}

		return m.updateSection(msg)
	}

	return m, nil
}

func (m FeedbackModel) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" {
		return m, tea.Quit
	}
	if key == "down" || key == "j" {
		cmd := m.moveSection(1)
		return m, cmd
	}
	if key == "up" || key == "k" {
		cmd := m.moveSection(-1)
		return m, cmd
	}

	likes := state.AllLikeTags()
	improvements := state.AllImproveTags()

	switch m.section {
	case feedbackRating:
		switch key {
		case "left", "h", "-":
			m.feedback.SetRating(state.StepRating(m.feedback.State().Rating, -1))
		case "right", "l", "+":
			m.feedback.SetRating(state.StepRating(m.feedback.State().Rating, 1))
		}

	case feedbackLikes:
		switch key {
		case "left", "h":
			m.likeCursor = max(0, m.likeCursor-1)
		case "right", "l":
			m.likeCursor = min(len(likes)-1, m.likeCursor+1)
		case " ", "space", "enter":
			m.feedback.ToggleLike(likes[m.likeCursor])
		}

	case feedbackImprovements:
		switch key {
		case "left", "h":
			m.improveCursor = max(0, m.improveCursor-1)
		case "right", "l":
			m.improveCursor = min(len(improvements)-1, m.improveCursor+1)
		case " ", "space", "enter":
			m.feedback.ToggleImprovement(improvements[m.improveCursor])
		}

	case feedbackSubmit:
		if key == "enter" {
			m.feedback.Submit()
		}
	}

	return m, nil
}

// renderStars draws rating as five stars with half steps.
func renderStars(rating float64) string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		switch {
		case rating >= float64(i):
			b.WriteString("★")
		case rating >= float64(i)-0.5:
			b.WriteString("⯪")
		default:
			b.WriteString("☆")
		}
	}
	return b.String()
}

func renderChips[T interface{ Title() string }](tags []T, active func(T) bool, cursor int, focused bool) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		style := chipStyle
		if active(tag) {
			style = activeChipStyle
		}
		label := tag.Title()
		if focused && i == cursor {
			label = "› " + label
		}
		chips[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m FeedbackModel) sectionLabel(section int, label string) string {
	if m.section == section {
		return focusedStyle.Render(label)
	}
	return blurredStyle.Render(label)
}

func (m FeedbackModel) View() string {
	st := m.feedback.State()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Feedback") + "\n")

	b.WriteString(m.sectionLabel(feedbackRating, "How would you rate the app?") + "\n")
	b.WriteString(selectedStyle.Render(renderStars(st.Rating)) + fmt.Sprintf(" %.1f", st.Rating) + "\n\n")

	b.WriteString(m.sectionLabel(feedbackLikes, "What did you like?") + "\n")
	b.WriteString(renderChips(state.AllLikeTags(), st.HasLike, m.likeCursor, m.section == feedbackLikes) + "\n\n")

	b.WriteString(m.sectionLabel(feedbackImprovements, "What could be improved?") + "\n")
	b.WriteString(renderChips(state.AllImproveTags(), st.HasImprovement, m.improveCursor, m.section == feedbackImprovements) + "\n\n")

	b.WriteString(m.sectionLabel(feedbackComment, "Anything else?") + "\n")
	b.WriteString(m.comment.View() + "\n\n")

	label := "Submit"
	if m.section == feedbackSubmit {
		label = "› Submit ‹"
	}
	b.WriteString(buttonStyle.Render(label) + "\n\n")

	b.WriteString(helpStyle.Render("tab/↑↓: section • ←→: adjust • space: toggle • enter: submit • esc: back"))
	return b.String()
}
