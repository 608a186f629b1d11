package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saravenpi/stencil/internal/state"
)

type PlansModel struct {
	deps         Deps
	plans        *state.SubscriptionPlans
	cursor       int
	windowWidth  int
	windowHeight int
}

func NewPlansModel(deps Deps) PlansModel {
	return PlansModel{
		deps:         deps,
		plans:        state.NewSubscriptionPlans(),
		windowWidth:  80,
		windowHeight: 30,
	}
}

func (m PlansModel) Init() tea.Cmd {
	return nil
}

func (m PlansModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		plans := m.plans.State().Plans
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			return backToMenu(m.deps, m.windowWidth, m.windowHeight)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(plans)-1 {
				m.cursor++
			}
		case "enter", " ", "space":
			if m.cursor < len(plans) {
				m.plans.SelectPlan(plans[m.cursor])
			}
		case "c":
			m.plans.Continue()
		}
	}
	return m, nil
}

func (m PlansModel) renderPlan(plan state.Plan, focused, selected bool) string {
	var b strings.Builder

	radio := "( )"
	if selected {
		radio = "(•)"
	}
	header := fmt.Sprintf("%s %s", radio, plan.Option.Title())
	if focused {
		header = selectedStyle.Render(header)
	} else {
		header = normalStyle.Render(header)
	}
	if plan.HasDiscount() {
		header += " " + badgeStyle.Render(fmt.Sprintf("-%d%%", plan.DiscountPercent))
	}
	b.WriteString(header + "\n")
	b.WriteString(statusStyle.Render(plan.PriceLabel()) + " " + helpStyle.Render(plan.Option.Period()) + "\n")
	for _, benefit := range plan.Benefits {
		b.WriteString(normalStyle.Render("  ✓ "+benefit) + "\n")
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	width := min(m.windowWidth-4, 50)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m PlansModel) View() string {
	st := m.plans.State()

	s := titleStyle.Render("Choose your plan") + "\n"
	for i, plan := range st.Plans {
		s += m.renderPlan(plan, i == m.cursor, st.IsSelected(plan.Option)) + "\n"
	}

	button := disabledButtonStyle
	if st.Selected != nil {
		button = buttonStyle
	}
	s += "\n" + button.Render("Continue") + "\n\n"
	s += helpStyle.Render("↑↓/jk: navigate • enter/space: select • c: continue • esc: back • q: quit")
	return s
}
