package hotel

import "context"

type HotelRepository interface {
	Save(ctx context.Context, hotel *Hotel) error
	Update(ctx context.Context, hotel *Hotel) error
	Delete(ctx context.Context, hotelID uint) error
	GetByID(ctx context.Context, hotelID uint) (*Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*Hotel, error)
	// GetBySlugPrefix returns the first hotel whose slug starts with the
	// given prefix, ordered by slug, for fuzzy storefront lookups.
	GetBySlugPrefix(ctx context.Context, prefix string) (*Hotel, error)
	GetByName(ctx context.Context, name string) (*Hotel, error)
	// SearchByName returns the first hotel whose name contains the given
	// fragment, for storefront lookups where the derived name is partial.
	SearchByName(ctx context.Context, fragment string) (*Hotel, error)
	List(ctx context.Context, filter HotelFilter) ([]*Hotel, int64, error)
	Count(ctx context.Context) (int64, error)
}

type HotelFilter struct {
	Status   *Status
	Search   string
	Page     int
	PageSize int
}

// CounterRepository manages the per-hotel order number sequence.
type CounterRepository interface {
	// NextOrderNumber atomically increments and returns the hotel's order
	// number sequence, creating the counter row on first use.
	NextOrderNumber(ctx context.Context, hotelID uint) (int64, error)
}
