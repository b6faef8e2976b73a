package usecases

import (
	"context"
	"errors"

	"hoteltec/internal/domain/coupon"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type ValidateCouponCommand struct {
	Code string
	// Amount is the price being discounted; zero means the caller only wants
	// a validity check.
	Amount float64
}

type ValidateCouponResult struct {
	Coupon          *coupon.Coupon
	Valid           bool
	Reason          string
	DiscountAmount  float64
	DiscountedTotal float64
}

// ValidateCouponUseCase checks a code without consuming a use. The rejection
// reason reflects the first failed check: inactive, then expired, then
// usage cap.
type ValidateCouponUseCase struct {
	couponRepo coupon.CouponRepository
	logger     logger.Interface
}

func NewValidateCouponUseCase(couponRepo coupon.CouponRepository, logger logger.Interface) *ValidateCouponUseCase {
	return &ValidateCouponUseCase{couponRepo: couponRepo, logger: logger}
}

func (uc *ValidateCouponUseCase) Execute(ctx context.Context, cmd ValidateCouponCommand) (*ValidateCouponResult, error) {
	if cmd.Code == "" {
		return nil, apperrors.NewValidationError("coupon code is required")
	}

	c, err := uc.couponRepo.GetByCode(ctx, cmd.Code)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return &ValidateCouponResult{Valid: false, Reason: "coupon code not found"}, nil
		}
		return nil, err
	}

	if err := c.CheckRedeemable(); err != nil {
		reason := "coupon is not redeemable"
		switch {
		case errors.Is(err, coupon.ErrInactive):
			reason = "coupon is not active"
		case errors.Is(err, coupon.ErrExpired):
			reason = "coupon has expired"
		case errors.Is(err, coupon.ErrUsageCapHit):
			reason = "coupon usage limit reached"
		}
		return &ValidateCouponResult{Coupon: c, Valid: false, Reason: reason}, nil
	}

	result := &ValidateCouponResult{Coupon: c, Valid: true}
	if cmd.Amount > 0 {
		result.DiscountAmount = c.DiscountAmount(cmd.Amount)
		result.DiscountedTotal = c.Apply(cmd.Amount)
	}
	return result, nil
}
