package usecases

import (
	"context"

	"hoteltec/internal/domain/coupon"
)

type ListCouponsCommand struct {
	Page     int
	PageSize int
}

type ListCouponsResult struct {
	Coupons []*coupon.Coupon
	Total   int64
}

type ListCouponsUseCase struct {
	couponRepo coupon.CouponRepository
}

func NewListCouponsUseCase(couponRepo coupon.CouponRepository) *ListCouponsUseCase {
	return &ListCouponsUseCase{couponRepo: couponRepo}
}

func (uc *ListCouponsUseCase) Execute(ctx context.Context, cmd ListCouponsCommand) (*ListCouponsResult, error) {
	coupons, total, err := uc.couponRepo.List(ctx, cmd.Page, cmd.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListCouponsResult{Coupons: coupons, Total: total}, nil
}
