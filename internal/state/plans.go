package state

import (
	"fmt"
	"slices"

	"github.com/saravenpi/stencil/internal/logger"
	"github.com/saravenpi/stencil/internal/store"
)

type Plan struct {
	Option PlanOption
	// DiscountPercent is zero when the plan has no discount.
	DiscountPercent int
	Price           float64
	Benefits        []string
}

func (p Plan) HasDiscount() bool { return p.DiscountPercent > 0 }

// PriceLabel formats the price for display, e.g. "$94.99".
func (p Plan) PriceLabel() string {
	return fmt.Sprintf("$%.2f", p.Price)
}

// Catalog returns the static plan catalog. Each call returns a fresh copy.
func Catalog() []Plan {
	return []Plan{
		{
			Option:          PlanYearly,
			DiscountPercent: 66,
			Price:           94.99,
			Benefits: []string{
				"Unlimited access to all content",
				"200GB storage",
				"sync all your devices",
				"24 hours support",
			},
		},
		{
			Option:          PlanMonthly,
			DiscountPercent: 53,
			Price:           10.90,
			Benefits: []string{
				"Unlimited access to all content",
				"100GB storage",
				"sync all your devices",
				"24 hours support",
			},
		},
		{
			Option: PlanWeekly,
			Price:  5.90,
			Benefits: []string{
				"Unlimited access to all content",
				"20GB storage",
				"24 hours support",
			},
		},
	}
}

type PlansState struct {
	// Selected is nil until the user picks a plan.
	Selected *Plan
	Plans    []Plan
}

// IsSelected reports whether option is the currently selected plan.
func (s PlansState) IsSelected(option PlanOption) bool {
	return s.Selected != nil && s.Selected.Option == option
}

type SubscriptionPlans struct {
	*store.Store[PlansState]
}

// NewSubscriptionPlans creates the container with the catalog loaded.
func NewSubscriptionPlans() *SubscriptionPlans {
	return &SubscriptionPlans{Store: store.New("SubscriptionPlans", PlansState{Plans: Catalog()})}
}

func (p *SubscriptionPlans) SelectPlan(plan Plan) {
	plan.Benefits = slices.Clone(plan.Benefits)
	p.Update(func(s PlansState) PlansState {
		s.Selected = &plan
		return s
	})
}

// Continue is not wired to any billing provider.
func (p *SubscriptionPlans) Continue() {
	selected := "none"
	if plan := p.State().Selected; plan != nil {
		selected = plan.Option.Title()
	}
	logger.ComponentLogger("SubscriptionPlans").Debug("continue requested", "plan", selected)
}
