package usecases

import (
	"context"

	"hoteltec/internal/domain/coupon"
	apperrors "hoteltec/internal/shared/errors"
)

type mockCouponRepository struct {
	SaveFunc      func(ctx context.Context, c *coupon.Coupon) error
	UpdateFunc    func(ctx context.Context, c *coupon.Coupon) error
	DeleteFunc    func(ctx context.Context, couponID uint) error
	GetByIDFunc   func(ctx context.Context, couponID uint) (*coupon.Coupon, error)
	GetByCodeFunc func(ctx context.Context, code string) (*coupon.Coupon, error)
	ListFunc      func(ctx context.Context, page, pageSize int) ([]*coupon.Coupon, int64, error)
}

func (m *mockCouponRepository) Save(ctx context.Context, c *coupon.Coupon) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCouponRepository) Delete(ctx context.Context, couponID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, couponID)
	}
	return nil
}

func (m *mockCouponRepository) GetByID(ctx context.Context, couponID uint) (*coupon.Coupon, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, couponID)
	}
	return nil, apperrors.NewNotFoundError("coupon not found")
}

func (m *mockCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, apperrors.NewNotFoundError("coupon not found")
}

func (m *mockCouponRepository) List(ctx context.Context, page, pageSize int) ([]*coupon.Coupon, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockCouponRepository) IncrementUsage(ctx context.Context, couponID uint) (bool, error) {
	return true, nil
}
