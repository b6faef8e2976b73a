package catalog

import (
	"context"

	"hoteltec/internal/shared/db"
)

type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	SaveBatch(ctx context.Context, products []*Product) error
	Update(ctx context.Context, product *Product) error
	// UpdateFields applies only the columns set on the update, scoped to the
	// owning hotel.
	UpdateFields(ctx context.Context, hotelID, productID uint, update *db.PartialUpdate) error
	Delete(ctx context.Context, productID uint) error
	GetByID(ctx context.Context, productID uint) (*Product, error)
	GetByHotelID(ctx context.Context, hotelID uint, filter ProductFilter) ([]*Product, int64, error)
	GetByIDs(ctx context.Context, hotelID uint, productIDs []uint) ([]*Product, error)
	CountByHotelID(ctx context.Context, hotelID uint) (int64, error)
	DeleteByHotelID(ctx context.Context, hotelID uint) error
}

type ProductFilter struct {
	Category      string
	AvailableOnly bool
	Search        string
	Page          int
	PageSize      int
}
