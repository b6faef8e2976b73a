package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/hotel"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

func seededHotel(t *testing.T, id uint, name, slug string) *hotel.Hotel {
	t.Helper()
	h, err := hotel.NewHotel(name, slug, "owner@example.com")
	require.NoError(t, err)
	require.NoError(t, h.SetID(id))
	h.MarkCatalogSeeded()
	return h
}

func availableProduct(t *testing.T, id, hotelID uint, name string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(hotelID, name, "", 9.5, "Food")
	require.NoError(t, err)
	require.NoError(t, p.SetID(id))
	return p
}

func TestResolveHotelUseCase_ExactSlugMatch(t *testing.T) {
	h := seededHotel(t, 1, "Grand Plaza", "grand-plaza")

	hotelRepo := &mockHotelRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*hotel.Hotel, error) {
			assert.Equal(t, "grand-plaza", slug)
			return h, nil
		},
	}
	productRepo := &mockProductRepository{
		GetByHotelIDFunc: func(ctx context.Context, hotelID uint, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
			assert.Equal(t, uint(1), hotelID)
			assert.True(t, filter.AvailableOnly)
			return []*catalog.Product{availableProduct(t, 10, 1, "Club Sandwich")}, 1, nil
		},
	}

	uc := NewResolveHotelUseCase(hotelRepo, productRepo, &mockTxRunner{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "Grand Plaza"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.Hotel.ID())
	assert.Len(t, result.Products, 1)
	assert.True(t, result.OrderingEnabled)
	assert.False(t, result.Maintenance)
	assert.True(t, result.CatalogSeeded)
}

func TestResolveHotelUseCase_FallbackChain(t *testing.T) {
	h := seededHotel(t, 2, "Sea View Hotel", "sea-view-hotel")

	t.Run("prefix match when exact slug misses", func(t *testing.T) {
		hotelRepo := &mockHotelRepository{
			GetBySlugPrefixFunc: func(ctx context.Context, prefix string) (*hotel.Hotel, error) {
				assert.Equal(t, "sea-view", prefix)
				return h, nil
			},
		}

		uc := NewResolveHotelUseCase(hotelRepo, &mockProductRepository{}, &mockTxRunner{}, logger.NewLogger())
		result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "sea-view"})

		require.NoError(t, err)
		assert.Equal(t, uint(2), result.Hotel.ID())
	})

	t.Run("derived name match when slug lookups miss", func(t *testing.T) {
		var lookedUpName string
		hotelRepo := &mockHotelRepository{
			GetByNameFunc: func(ctx context.Context, name string) (*hotel.Hotel, error) {
				lookedUpName = name
				return h, nil
			},
		}

		uc := NewResolveHotelUseCase(hotelRepo, &mockProductRepository{}, &mockTxRunner{}, logger.NewLogger())
		result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "sea-view-hotel"})

		require.NoError(t, err)
		assert.Equal(t, "Sea View Hotel", lookedUpName)
		assert.Equal(t, uint(2), result.Hotel.ID())
	})

	t.Run("substring name match when exact name misses", func(t *testing.T) {
		var fragment string
		hotelRepo := &mockHotelRepository{
			SearchByNameFunc: func(ctx context.Context, f string) (*hotel.Hotel, error) {
				fragment = f
				return h, nil
			},
		}

		uc := NewResolveHotelUseCase(hotelRepo, &mockProductRepository{}, &mockTxRunner{}, logger.NewLogger())
		result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "sea-view"})

		require.NoError(t, err)
		assert.Equal(t, "Sea View", fragment)
		assert.Equal(t, uint(2), result.Hotel.ID())
	})

	t.Run("numeric slug falls back to primary key", func(t *testing.T) {
		hotelRepo := &mockHotelRepository{
			GetByIDFunc: func(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
				assert.Equal(t, uint(2), hotelID)
				return h, nil
			},
		}

		uc := NewResolveHotelUseCase(hotelRepo, &mockProductRepository{}, &mockTxRunner{}, logger.NewLogger())
		result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "2"})

		require.NoError(t, err)
		assert.Equal(t, uint(2), result.Hotel.ID())
	})

	t.Run("not found after full chain", func(t *testing.T) {
		uc := NewResolveHotelUseCase(&mockHotelRepository{}, &mockProductRepository{}, &mockTxRunner{}, logger.NewLogger())
		_, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "no-such-hotel"})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestResolveHotelUseCase_SeedsCatalogOnFirstVisit(t *testing.T) {
	h, err := hotel.NewHotel("Fresh Hotel", "fresh-hotel", "owner@example.com")
	require.NoError(t, err)
	require.NoError(t, h.SetID(3))
	require.False(t, h.CatalogSeeded())

	var seeded []*catalog.Product
	var hotelUpdated bool

	hotelRepo := &mockHotelRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*hotel.Hotel, error) {
			return h, nil
		},
		GetByIDFunc: func(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
			return h, nil
		},
		UpdateFunc: func(ctx context.Context, updated *hotel.Hotel) error {
			hotelUpdated = true
			assert.True(t, updated.CatalogSeeded())
			return nil
		},
	}
	productRepo := &mockProductRepository{
		SaveBatchFunc: func(ctx context.Context, ps []*catalog.Product) error {
			seeded = ps
			return nil
		},
	}

	uc := NewResolveHotelUseCase(hotelRepo, productRepo, &mockTxRunner{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "fresh-hotel"})

	require.NoError(t, err)
	assert.True(t, hotelUpdated)
	assert.NotEmpty(t, seeded)
	for _, p := range seeded {
		assert.Equal(t, uint(3), p.HotelID())
	}
	assert.True(t, result.CatalogSeeded)
}

func TestResolveHotelUseCase_KeepsOwnerBuiltCatalog(t *testing.T) {
	h, err := hotel.NewHotel("Head Start", "head-start", "owner@example.com")
	require.NoError(t, err)
	require.NoError(t, h.SetID(7))
	require.False(t, h.CatalogSeeded())

	existing := availableProduct(t, 70, 7, "House Lasagna")

	var hotelUpdated bool
	hotelRepo := &mockHotelRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*hotel.Hotel, error) {
			return h, nil
		},
		GetByIDFunc: func(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
			return h, nil
		},
		UpdateFunc: func(ctx context.Context, updated *hotel.Hotel) error {
			hotelUpdated = true
			assert.True(t, updated.CatalogSeeded())
			return nil
		},
	}
	productRepo := &mockProductRepository{
		CountByHotelIDFunc: func(ctx context.Context, hotelID uint) (int64, error) {
			return 1, nil
		},
		SaveBatchFunc: func(ctx context.Context, ps []*catalog.Product) error {
			t.Fatal("defaults must not be seeded over an owner-built menu")
			return nil
		},
		GetByHotelIDFunc: func(ctx context.Context, hotelID uint, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
			return []*catalog.Product{existing}, 1, nil
		},
	}

	uc := NewResolveHotelUseCase(hotelRepo, productRepo, &mockTxRunner{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "head-start"})

	require.NoError(t, err)
	assert.True(t, hotelUpdated)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "House Lasagna", result.Products[0].Name())
	assert.True(t, result.CatalogSeeded)
}

func TestResolveHotelUseCase_SkipsSeedingWhenAlreadySeeded(t *testing.T) {
	h := seededHotel(t, 4, "Old Hotel", "old-hotel")

	productRepo := &mockProductRepository{
		SaveBatchFunc: func(ctx context.Context, ps []*catalog.Product) error {
			t.Fatal("seed should not run for an already seeded hotel")
			return nil
		},
	}
	hotelRepo := &mockHotelRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*hotel.Hotel, error) {
			return h, nil
		},
	}

	uc := NewResolveHotelUseCase(hotelRepo, productRepo, &mockTxRunner{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "old-hotel"})
	require.NoError(t, err)
}

func TestResolveHotelUseCase_SeedFailureStillRenders(t *testing.T) {
	h, err := hotel.NewHotel("Broken Seed", "broken-seed", "owner@example.com")
	require.NoError(t, err)
	require.NoError(t, h.SetID(5))

	hotelRepo := &mockHotelRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*hotel.Hotel, error) {
			return h, nil
		},
		GetByIDFunc: func(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
			return h, nil
		},
	}
	productRepo := &mockProductRepository{
		SaveBatchFunc: func(ctx context.Context, ps []*catalog.Product) error {
			return assert.AnError
		},
	}

	uc := NewResolveHotelUseCase(hotelRepo, productRepo, &mockTxRunner{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "broken-seed"})

	require.NoError(t, err)
	assert.False(t, result.CatalogSeeded)
}

func TestResolveHotelUseCase_MaintenanceDisablesOrdering(t *testing.T) {
	h := seededHotel(t, 6, "Quiet Hotel", "quiet-hotel")
	h.SetMaintenanceMode(true)

	hotelRepo := &mockHotelRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*hotel.Hotel, error) {
			return h, nil
		},
	}

	uc := NewResolveHotelUseCase(hotelRepo, &mockProductRepository{}, &mockTxRunner{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "quiet-hotel"})

	require.NoError(t, err)
	assert.True(t, result.Maintenance)
	assert.False(t, result.OrderingEnabled)
}

func TestResolveHotelUseCase_EmptySlug(t *testing.T) {
	uc := NewResolveHotelUseCase(&mockHotelRepository{}, &mockProductRepository{}, &mockTxRunner{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ResolveHotelCommand{Slug: "  "})

	require.Error(t, err)
	assert.True(t, apperrors.IsAppError(err))
}
