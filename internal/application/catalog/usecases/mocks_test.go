package usecases

import (
	"context"
	"time"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
)

type mockProductRepository struct {
	SaveFunc           func(ctx context.Context, p *catalog.Product) error
	UpdateFieldsFunc   func(ctx context.Context, hotelID, productID uint, update *db.PartialUpdate) error
	DeleteFunc         func(ctx context.Context, productID uint) error
	GetByIDFunc        func(ctx context.Context, productID uint) (*catalog.Product, error)
	GetByHotelIDFunc   func(ctx context.Context, hotelID uint, filter catalog.ProductFilter) ([]*catalog.Product, int64, error)
	CountByHotelIDFunc func(ctx context.Context, hotelID uint) (int64, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProductRepository) SaveBatch(ctx context.Context, ps []*catalog.Product) error {
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *catalog.Product) error { return nil }

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
	return nil, nil
}

func (m *mockProductRepository) CountByHotelID(ctx context.Context, hotelID uint) (int64, error) {
	if m.CountByHotelIDFunc != nil {
		return m.CountByHotelIDFunc(ctx, hotelID)
	}
	return 0, nil
}

func (m *mockProductRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error { return nil }

type mockSubscriptionRepository struct {
	GetCurrentByHotelIDFunc func(ctx context.Context, hotelID uint) (*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) GetCurrentByHotelID(ctx context.Context, hotelID uint) (*subscription.Subscription, error) {
	if m.GetCurrentByHotelIDFunc != nil {
		return m.GetCurrentByHotelIDFunc(ctx, hotelID)
	}
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*subscription.Subscription, error) {
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	return nil, 0, nil
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error) {
	return 0, nil
}

func (m *mockSubscriptionRepository) SumAmountPaid(ctx context.Context, statuses []vo.SubscriptionStatus) (float64, error) {
	return 0, nil
}

func (m *mockSubscriptionRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	return nil
}

type mockPlanRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*subscription.Plan, error)
}

func (m *mockPlanRepository) Save(ctx context.Context, plan *subscription.Plan) error   { return nil }
func (m *mockPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error { return nil }

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("plan not found")
}

func (m *mockPlanRepository) GetByName(ctx context.Context, name string) (*subscription.Plan, error) {
	return nil, apperrors.NewNotFoundError("plan not found")
}

func (m *mockPlanRepository) ListActive(ctx context.Context) ([]*subscription.Plan, error) {
	return nil, nil
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	return nil, nil
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) { return 0, nil }
