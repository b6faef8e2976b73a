package usecases

import (
	"context"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/shared/logger"
)

type UpdateCouponCommand struct {
	CouponID    uint
	Description *string
	IsActive    *bool
}

type UpdateCouponUseCase struct {
	couponRepo coupon.CouponRepository
	logger     logger.Interface
}

func NewUpdateCouponUseCase(couponRepo coupon.CouponRepository, logger logger.Interface) *UpdateCouponUseCase {
	return &UpdateCouponUseCase{couponRepo: couponRepo, logger: logger}
}

func (uc *UpdateCouponUseCase) Execute(ctx context.Context, cmd UpdateCouponCommand) (*coupon.Coupon, error) {
	c, err := uc.couponRepo.GetByID(ctx, cmd.CouponID)
	if err != nil {
		return nil, err
	}

	if cmd.Description != nil {
		c.SetDescription(*cmd.Description)
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			c.Activate()
		} else {
			c.Deactivate()
		}
	}

	if err := uc.couponRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Infow("coupon updated", "code", c.Code(), "active", c.IsActive())
	return c, nil
}
