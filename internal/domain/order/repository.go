package order

import (
	"context"
	"time"

	vo "hoteltec/internal/domain/order/valueobjects"
)

type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	GetByHotelID(ctx context.Context, hotelID uint, filter OrderFilter) ([]*Order, int64, error)
	CountByHotelID(ctx context.Context, hotelID uint) (int64, error)
	SumTotals(ctx context.Context, hotelID *uint, from, to *time.Time) (float64, error)
	CountSince(ctx context.Context, hotelID *uint, since time.Time) (int64, error)
	CountBetween(ctx context.Context, hotelID *uint, from, to *time.Time) (int64, error)
	DeleteByHotelID(ctx context.Context, hotelID uint) error
}

type OrderFilter struct {
	Status     *vo.OrderStatus
	RoomNumber string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}
