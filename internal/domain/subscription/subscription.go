package subscription

import (
	"fmt"
	"time"

	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/shared/biztime"
)

// TrialDays is the default trial period length.
const TrialDays = 14

// Subscription represents the hotel subscription aggregate root
type Subscription struct {
	id            uint
	hotelID       uint
	userID        uint
	planID        uint
	status        vo.SubscriptionStatus
	startDate     *time.Time
	endDate       *time.Time
	amountPaid    float64
	couponID      *uint
	transactionID *string
	cancelledAt   *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewTrialSubscription starts a trial that runs TrialDays from now.
func NewTrialSubscription(hotelID, userID, planID uint) (*Subscription, error) {
	s, err := newSubscription(hotelID, userID, planID)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	end := now.AddDate(0, 0, TrialDays)
	s.status = vo.StatusTrial
	s.startDate = &now
	s.endDate = &end
	return s, nil
}

// NewPendingSubscription creates a paid subscription awaiting payment
// confirmation. Dates are set when the payment is confirmed.
func NewPendingSubscription(hotelID, userID, planID uint, amountDue float64) (*Subscription, error) {
	s, err := newSubscription(hotelID, userID, planID)
	if err != nil {
		return nil, err
	}
	if amountDue < 0 {
		return nil, fmt.Errorf("amount due cannot be negative")
	}

	s.status = vo.StatusPending
	s.amountPaid = amountDue
	return s, nil
}

func newSubscription(hotelID, userID, planID uint) (*Subscription, error) {
	if hotelID == 0 {
		return nil, fmt.Errorf("hotel ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := biztime.NowUTC()
	return &Subscription{
		hotelID:   hotelID,
		userID:    userID,
		planID:    planID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, hotelID, userID, planID uint,
	status vo.SubscriptionStatus,
	startDate, endDate *time.Time,
	amountPaid float64,
	couponID *uint,
	transactionID *string,
	cancelledAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if hotelID == 0 {
		return nil, fmt.Errorf("hotel ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:            id,
		hotelID:       hotelID,
		userID:        userID,
		planID:        planID,
		status:        status,
		startDate:     startDate,
		endDate:       endDate,
		amountPaid:    amountPaid,
		couponID:      couponID,
		transactionID: transactionID,
		cancelledAt:   cancelledAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) HotelID() uint                 { return s.hotelID }
func (s *Subscription) UserID() uint                  { return s.userID }
func (s *Subscription) PlanID() uint                  { return s.planID }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) StartDate() *time.Time         { return s.startDate }
func (s *Subscription) EndDate() *time.Time           { return s.endDate }
func (s *Subscription) AmountPaid() float64           { return s.amountPaid }
func (s *Subscription) CouponID() *uint               { return s.couponID }
func (s *Subscription) TransactionID() *string        { return s.transactionID }
func (s *Subscription) CancelledAt() *time.Time       { return s.cancelledAt }
func (s *Subscription) Version() int                  { return s.version }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID assigns the persistence identity after the first save
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// ApplyCoupon records the discount used when the subscription was purchased
func (s *Subscription) ApplyCoupon(couponID uint, discountedAmount float64) error {
	if couponID == 0 {
		return fmt.Errorf("coupon ID cannot be zero")
	}
	if discountedAmount < 0 {
		return fmt.Errorf("discounted amount cannot be negative")
	}
	s.couponID = &couponID
	s.amountPaid = discountedAmount
	s.updatedAt = biztime.NowUTC()
	return nil
}

// AttachTransaction links the subscription to the payment transaction that
// will confirm it.
func (s *Subscription) AttachTransaction(transactionID string) error {
	if transactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	s.transactionID = &transactionID
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Activate confirms payment and opens a paid period of periodDays from now.
func (s *Subscription) Activate(periodDays int) error {
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot activate subscription in status %s", s.status)
	}
	if periodDays <= 0 {
		return fmt.Errorf("period days must be positive")
	}

	now := biztime.NowUTC()
	end := now.AddDate(0, 0, periodDays)
	s.status = vo.StatusActive
	s.startDate = &now
	s.endDate = &end
	s.updatedAt = now
	return nil
}

// Cancel ends the subscription immediately
func (s *Subscription) Cancel() error {
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel subscription in status %s", s.status)
	}
	now := biztime.NowUTC()
	s.status = vo.StatusCancelled
	s.cancelledAt = &now
	s.updatedAt = now
	return nil
}

// MarkExpired flags a subscription whose end date has passed
func (s *Subscription) MarkExpired() error {
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire subscription in status %s", s.status)
	}
	s.status = vo.StatusExpired
	s.updatedAt = biztime.NowUTC()
	return nil
}

// IsExpired reports whether the end date has passed
func (s *Subscription) IsExpired() bool {
	return s.endDate != nil && s.endDate.Before(biztime.NowUTC())
}

// IsUsable reports whether the subscription currently grants access
func (s *Subscription) IsUsable() bool {
	return s.status.IsUsable() && !s.IsExpired()
}

// DaysRemaining returns whole days until the end date, zero when expired or
// when no end date is set.
func (s *Subscription) DaysRemaining() int {
	if s.endDate == nil {
		return 0
	}
	remaining := time.Until(*s.endDate)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Hours() / 24)
}
