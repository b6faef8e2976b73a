package usecases

import (
	"context"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/shared/logger"
)

type DeleteCouponUseCase struct {
	couponRepo coupon.CouponRepository
	logger     logger.Interface
}

func NewDeleteCouponUseCase(couponRepo coupon.CouponRepository, logger logger.Interface) *DeleteCouponUseCase {
	return &DeleteCouponUseCase{couponRepo: couponRepo, logger: logger}
}

func (uc *DeleteCouponUseCase) Execute(ctx context.Context, couponID uint) error {
	c, err := uc.couponRepo.GetByID(ctx, couponID)
	if err != nil {
		return err
	}

	if err := uc.couponRepo.Delete(ctx, couponID); err != nil {
		return err
	}

	uc.logger.Infow("coupon deleted", "code", c.Code())
	return nil
}
