package coupon

import (
	"fmt"
	"strings"
	"time"

	"hoteltec/internal/shared/biztime"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var validDiscountTypes = map[DiscountType]bool{
	DiscountPercentage: true,
	DiscountFixed:      true,
}

// Validation failures, in the order checks run: active before expiry before
// usage cap.
var (
	ErrInactive    = fmt.Errorf("coupon is not active")
	ErrExpired     = fmt.Errorf("coupon has expired")
	ErrUsageCapHit = fmt.Errorf("coupon usage limit reached")
)

// Coupon represents a discount code. MaxUses of zero means unlimited.
type Coupon struct {
	id            uint
	code          string
	description   string
	discountType  DiscountType
	discountValue float64
	maxUses       int
	currentUses   int
	isActive      bool
	expiresAt     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewCoupon creates a new coupon. Codes are stored uppercase.
func NewCoupon(code string, discountType DiscountType, discountValue float64, maxUses int, expiresAt *time.Time) (*Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("coupon code is required")
	}
	if !validDiscountTypes[discountType] {
		return nil, fmt.Errorf("invalid discount type: %s", discountType)
	}
	if discountValue <= 0 {
		return nil, fmt.Errorf("discount value must be positive")
	}
	if discountType == DiscountPercentage && discountValue > 100 {
		return nil, fmt.Errorf("percentage discount cannot exceed 100")
	}
	if maxUses < 0 {
		return nil, fmt.Errorf("max uses cannot be negative")
	}

	now := biztime.NowUTC()
	return &Coupon{
		code:          code,
		discountType:  discountType,
		discountValue: discountValue,
		maxUses:       maxUses,
		isActive:      true,
		expiresAt:     expiresAt,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructCoupon reconstructs a coupon from persistence
func ReconstructCoupon(
	id uint,
	code, description string,
	discountType DiscountType,
	discountValue float64,
	maxUses, currentUses int,
	isActive bool,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Coupon, error) {
	if id == 0 {
		return nil, fmt.Errorf("coupon ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("coupon code is required")
	}
	if !validDiscountTypes[discountType] {
		return nil, fmt.Errorf("invalid discount type: %s", discountType)
	}

	return &Coupon{
		id:            id,
		code:          code,
		description:   description,
		discountType:  discountType,
		discountValue: discountValue,
		maxUses:       maxUses,
		currentUses:   currentUses,
		isActive:      isActive,
		expiresAt:     expiresAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Coupon) ID() uint                   { return c.id }
func (c *Coupon) Code() string               { return c.code }
func (c *Coupon) Description() string        { return c.description }
func (c *Coupon) DiscountType() DiscountType { return c.discountType }
func (c *Coupon) DiscountValue() float64     { return c.discountValue }
func (c *Coupon) MaxUses() int               { return c.maxUses }
func (c *Coupon) CurrentUses() int           { return c.currentUses }
func (c *Coupon) IsActive() bool             { return c.isActive }
func (c *Coupon) ExpiresAt() *time.Time      { return c.expiresAt }
func (c *Coupon) CreatedAt() time.Time       { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time       { return c.updatedAt }

// SetID assigns the persistence identity after the first save
func (c *Coupon) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("coupon ID already set")
	}
	if id == 0 {
		return fmt.Errorf("coupon ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetDescription updates the operator-facing description
func (c *Coupon) SetDescription(description string) {
	c.description = strings.TrimSpace(description)
	c.updatedAt = biztime.NowUTC()
}

// Deactivate disables the coupon without deleting it
func (c *Coupon) Deactivate() {
	c.isActive = false
	c.updatedAt = biztime.NowUTC()
}

// Activate re-enables the coupon
func (c *Coupon) Activate() {
	c.isActive = true
	c.updatedAt = biztime.NowUTC()
}

// CheckRedeemable validates the coupon in a fixed order: active, then
// expiry, then usage cap. The first failing check wins.
func (c *Coupon) CheckRedeemable() error {
	if !c.isActive {
		return ErrInactive
	}
	if c.expiresAt != nil && c.expiresAt.Before(biztime.NowUTC()) {
		return ErrExpired
	}
	if c.maxUses > 0 && c.currentUses >= c.maxUses {
		return ErrUsageCapHit
	}
	return nil
}

// DiscountAmount computes the discount for the given price. Percentage
// discounts take value percent of the price; fixed discounts never exceed
// the price.
func (c *Coupon) DiscountAmount(price float64) float64 {
	if price <= 0 {
		return 0
	}
	switch c.discountType {
	case DiscountPercentage:
		return price * c.discountValue / 100
	case DiscountFixed:
		if c.discountValue > price {
			return price
		}
		return c.discountValue
	default:
		return 0
	}
}

// Apply returns the price after discount, never below zero.
func (c *Coupon) Apply(price float64) float64 {
	final := price - c.DiscountAmount(price)
	if final < 0 {
		return 0
	}
	return final
}
