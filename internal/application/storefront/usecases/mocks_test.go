package usecases

import (
	"context"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
)

type mockHotelRepository struct {
	SaveFunc            func(ctx context.Context, h *hotel.Hotel) error
	UpdateFunc          func(ctx context.Context, h *hotel.Hotel) error
	DeleteFunc          func(ctx context.Context, hotelID uint) error
	GetByIDFunc         func(ctx context.Context, hotelID uint) (*hotel.Hotel, error)
	GetBySlugFunc       func(ctx context.Context, slug string) (*hotel.Hotel, error)
	GetBySlugPrefixFunc func(ctx context.Context, prefix string) (*hotel.Hotel, error)
	GetByNameFunc       func(ctx context.Context, name string) (*hotel.Hotel, error)
	SearchByNameFunc    func(ctx context.Context, fragment string) (*hotel.Hotel, error)
	ListFunc            func(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, int64, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *mockHotelRepository) Save(ctx context.Context, h *hotel.Hotel) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	return nil
}

func (m *mockHotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, h)
	}
	return nil
}

func (m *mockHotelRepository) Delete(ctx context.Context, hotelID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, hotelID)
	}
	return nil
}

func (m *mockHotelRepository) GetByID(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, hotelID)
	}
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) GetBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) GetBySlugPrefix(ctx context.Context, prefix string) (*hotel.Hotel, error) {
	if m.GetBySlugPrefixFunc != nil {
		return m.GetBySlugPrefixFunc(ctx, prefix)
	}
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) GetByName(ctx context.Context, name string) (*hotel.Hotel, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) SearchByName(ctx context.Context, fragment string) (*hotel.Hotel, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, fragment)
	}
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) List(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockHotelRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockProductRepository struct {
	SaveFunc            func(ctx context.Context, p *catalog.Product) error
	SaveBatchFunc       func(ctx context.Context, ps []*catalog.Product) error
	UpdateFunc          func(ctx context.Context, p *catalog.Product) error
	UpdateFieldsFunc    func(ctx context.Context, hotelID, productID uint, update *db.PartialUpdate) error
	DeleteFunc          func(ctx context.Context, productID uint) error
	GetByIDFunc         func(ctx context.Context, productID uint) (*catalog.Product, error)
	GetByHotelIDFunc    func(ctx context.Context, hotelID uint, filter catalog.ProductFilter) ([]*catalog.Product, int64, error)
	GetByIDsFunc        func(ctx context.Context, hotelID uint, productIDs []uint) ([]*catalog.Product, error)
	CountByHotelIDFunc  func(ctx context.Context, hotelID uint) (int64, error)
	DeleteByHotelIDFunc func(ctx context.Context, hotelID uint) error
}

func (m *mockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) SaveBatch(ctx context.Context, ps []*catalog.Product) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, ps)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) UpdateFields(ctx context.Context, hotelID, productID uint, update *db.PartialUpdate) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, hotelID, productID, update)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, productID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, productID)
	}
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, productID uint) (*catalog.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, productID)
	}
	return nil, apperrors.NewNotFoundError("product not found")
}

func (m *mockProductRepository) GetByHotelID(ctx context.Context, hotelID uint, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	if m.GetByHotelIDFunc != nil {
		return m.GetByHotelIDFunc(ctx, hotelID, filter)
	}
	return nil, 0, nil
}

func (m *mockProductRepository) GetByIDs(ctx context.Context, hotelID uint, productIDs []uint) ([]*catalog.Product, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, hotelID, productIDs)
	}
	return nil, nil
}

func (m *mockProductRepository) CountByHotelID(ctx context.Context, hotelID uint) (int64, error) {
	if m.CountByHotelIDFunc != nil {
		return m.CountByHotelIDFunc(ctx, hotelID)
	}
	return 0, nil
}

func (m *mockProductRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	if m.DeleteByHotelIDFunc != nil {
		return m.DeleteByHotelIDFunc(ctx, hotelID)
	}
	return nil
}

// mockTxRunner runs the callback without a real transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}
