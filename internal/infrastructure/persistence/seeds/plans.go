package seeds

import (
	"fmt"

	"hoteltec/internal/domain/subscription"
)

type seedPlan struct {
	name          string
	displayName   string
	price         float64
	billingMonths int
	maxProducts   int
	sortOrder     int
}

var defaultPlans = []seedPlan{
	{name: "free", displayName: "Free", price: 0, billingMonths: 1, maxProducts: 5, sortOrder: 0},
	{name: "starter", displayName: "Starter", price: 19.99, billingMonths: 1, maxProducts: 25, sortOrder: 1},
	{name: "pro", displayName: "Pro", price: 49.99, billingMonths: 1, maxProducts: 100, sortOrder: 2},
	{name: "pro-yearly", displayName: "Pro Yearly", price: 499.99, billingMonths: 12, maxProducts: 100, sortOrder: 3},
}

// DefaultPlans builds the plan tiers installed on first migration.
func DefaultPlans() ([]*subscription.Plan, error) {
	plans := make([]*subscription.Plan, 0, len(defaultPlans))
	for _, sp := range defaultPlans {
		p, err := subscription.NewPlan(sp.name, sp.displayName, sp.price, sp.billingMonths, sp.maxProducts)
		if err != nil {
			return nil, fmt.Errorf("invalid seed plan %q: %w", sp.name, err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}
