package mappers

import (
	"fmt"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/infrastructure/persistence/models"
)

// CouponMapper converts between the coupon aggregate and its persistence
// model
type CouponMapper struct{}

func NewCouponMapper() *CouponMapper {
	return &CouponMapper{}
}

func (m *CouponMapper) ToModel(c *coupon.Coupon) *models.CouponModel {
	return &models.CouponModel{
		ID:            c.ID(),
		Code:          c.Code(),
		Description:   c.Description(),
		DiscountType:  string(c.DiscountType()),
		DiscountValue: c.DiscountValue(),
		MaxUses:       c.MaxUses(),
		CurrentUses:   c.CurrentUses(),
		IsActive:      c.IsActive(),
		ExpiresAt:     c.ExpiresAt(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func (m *CouponMapper) ToDomain(model *models.CouponModel) (*coupon.Coupon, error) {
	c, err := coupon.ReconstructCoupon(
		model.ID,
		model.Code,
		model.Description,
		coupon.DiscountType(model.DiscountType),
		model.DiscountValue,
		model.MaxUses,
		model.CurrentUses,
		model.IsActive,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct coupon %d: %w", model.ID, err)
	}
	return c, nil
}

func (m *CouponMapper) UsageToModel(u *coupon.Usage) *models.CouponUsageModel {
	return &models.CouponUsageModel{
		ID:             u.ID(),
		CouponID:       u.CouponID(),
		UserID:         u.UserID(),
		SubscriptionID: u.SubscriptionID(),
		UsedAt:         u.UsedAt(),
	}
}

func (m *CouponMapper) UsageToDomain(model *models.CouponUsageModel) *coupon.Usage {
	return coupon.ReconstructUsage(model.ID, model.CouponID, model.UserID, model.SubscriptionID, model.UsedAt)
}
