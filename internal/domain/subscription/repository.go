package subscription

import (
	"context"
	"time"

	vo "hoteltec/internal/domain/subscription/valueobjects"
)

type SubscriptionRepository interface {
	Save(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetCurrentByHotelID returns the hotel's most recent subscription.
	GetCurrentByHotelID(ctx context.Context, hotelID uint) (*Subscription, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*Subscription, error)
	List(ctx context.Context, filter SubscriptionFilter) ([]*Subscription, int64, error)
	CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error)
	SumAmountPaid(ctx context.Context, statuses []vo.SubscriptionStatus) (float64, error)
	// ListOverdue returns active or trial subscriptions whose period ended before asOf.
	ListOverdue(ctx context.Context, asOf time.Time) ([]*Subscription, error)
	DeleteByHotelID(ctx context.Context, hotelID uint) error
}

type SubscriptionFilter struct {
	HotelID  *uint
	Status   *vo.SubscriptionStatus
	Page     int
	PageSize int
}

type PlanRepository interface {
	Save(ctx context.Context, plan *Plan) error
	Update(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	ListActive(ctx context.Context) ([]*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Count(ctx context.Context) (int64, error)
}
