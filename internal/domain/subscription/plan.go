package subscription

import (
	"fmt"
	"strings"
	"time"

	"hoteltec/internal/shared/biztime"
)

// FreeTierMaxProducts caps the catalog for hotels with no usable
// subscription.
const FreeTierMaxProducts = 5

// Plan represents a subscription tier. BillingMonths is the billing cycle
// length; a paid period runs 30 days per billing month.
type Plan struct {
	id            uint
	name          string
	displayName   string
	price         float64
	billingMonths int
	maxProducts   int
	features      []string
	isActive      bool
	sortOrder     int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPlan creates a new subscription plan
func NewPlan(name, displayName string, price float64, billingMonths, maxProducts int) (*Plan, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	if billingMonths <= 0 {
		return nil, fmt.Errorf("billing months must be positive")
	}
	if maxProducts <= 0 {
		return nil, fmt.Errorf("max products must be positive")
	}

	if displayName == "" {
		displayName = name
	}

	now := biztime.NowUTC()
	return &Plan{
		name:          name,
		displayName:   displayName,
		price:         price,
		billingMonths: billingMonths,
		maxProducts:   maxProducts,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence
func ReconstructPlan(
	id uint,
	name, displayName string,
	price float64,
	billingMonths, maxProducts int,
	features []string,
	isActive bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	return &Plan{
		id:            id,
		name:          name,
		displayName:   displayName,
		price:         price,
		billingMonths: billingMonths,
		maxProducts:   maxProducts,
		features:      features,
		isActive:      isActive,
		sortOrder:     sortOrder,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) DisplayName() string  { return p.displayName }
func (p *Plan) Price() float64       { return p.price }
func (p *Plan) BillingMonths() int   { return p.billingMonths }
func (p *Plan) MaxProducts() int     { return p.maxProducts }
func (p *Plan) IsActive() bool       { return p.isActive }
func (p *Plan) SortOrder() int       { return p.sortOrder }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// Features returns a copy of the plan feature list
func (p *Plan) Features() []string {
	features := make([]string, len(p.features))
	copy(features, p.features)
	return features
}

// SetID assigns the persistence identity after the first save
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsFree reports whether the plan costs nothing
func (p *Plan) IsFree() bool {
	return p.price == 0
}

// PeriodDays returns the paid period length: 30 days per billing month.
func (p *Plan) PeriodDays() int {
	return 30 * p.billingMonths
}
