package coupon

import (
	"fmt"
	"time"

	"hoteltec/internal/shared/biztime"
)

// Usage records one redemption of a coupon
type Usage struct {
	id             uint
	couponID       uint
	userID         uint
	subscriptionID *uint
	usedAt         time.Time
}

// NewUsage records a redemption happening now
func NewUsage(couponID, userID uint, subscriptionID *uint) (*Usage, error) {
	if couponID == 0 {
		return nil, fmt.Errorf("coupon ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Usage{
		couponID:       couponID,
		userID:         userID,
		subscriptionID: subscriptionID,
		usedAt:         biztime.NowUTC(),
	}, nil
}

// ReconstructUsage reconstructs a usage record from persistence
func ReconstructUsage(id, couponID, userID uint, subscriptionID *uint, usedAt time.Time) *Usage {
	return &Usage{
		id:             id,
		couponID:       couponID,
		userID:         userID,
		subscriptionID: subscriptionID,
		usedAt:         usedAt,
	}
}

func (u *Usage) ID() uint              { return u.id }
func (u *Usage) CouponID() uint        { return u.couponID }
func (u *Usage) UserID() uint          { return u.userID }
func (u *Usage) SubscriptionID() *uint { return u.subscriptionID }
func (u *Usage) UsedAt() time.Time     { return u.usedAt }
