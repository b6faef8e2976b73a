package usecases

import (
	"context"
	"time"

	"hoteltec/internal/domain/coupon"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type CreateCouponCommand struct {
	Code          string
	Description   string
	DiscountType  string
	DiscountValue float64
	MaxUses       int
	ExpiresAt     *time.Time
}

type CreateCouponUseCase struct {
	couponRepo coupon.CouponRepository
	logger     logger.Interface
}

func NewCreateCouponUseCase(couponRepo coupon.CouponRepository, logger logger.Interface) *CreateCouponUseCase {
	return &CreateCouponUseCase{couponRepo: couponRepo, logger: logger}
}

func (uc *CreateCouponUseCase) Execute(ctx context.Context, cmd CreateCouponCommand) (*coupon.Coupon, error) {
	c, err := coupon.NewCoupon(cmd.Code, coupon.DiscountType(cmd.DiscountType), cmd.DiscountValue, cmd.MaxUses, cmd.ExpiresAt)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.Description != "" {
		c.SetDescription(cmd.Description)
	}

	if err := uc.couponRepo.Save(ctx, c); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("coupon code already exists")
		}
		return nil, err
	}

	uc.logger.Infow("coupon created", "code", c.Code(), "type", c.DiscountType(), "value", c.DiscountValue())
	return c, nil
}
