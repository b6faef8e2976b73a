package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
)

type CouponUsageRepository struct {
	db     *gorm.DB
	mapper *mappers.CouponMapper
}

func NewCouponUsageRepository(db *gorm.DB) *CouponUsageRepository {
	return &CouponUsageRepository{
		db:     db,
		mapper: mappers.NewCouponMapper(),
	}
}

func (r *CouponUsageRepository) Save(ctx context.Context, usage *coupon.Usage) error {
	model := r.mapper.UsageToModel(usage)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save coupon usage: %w", err)
	}
	return nil
}

func (r *CouponUsageRepository) GetByCouponID(ctx context.Context, couponID uint) ([]*coupon.Usage, error) {
	var usageModels []models.CouponUsageModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("coupon_id = ?", couponID).
		Order("used_at DESC").
		Find(&usageModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list usages for coupon %d: %w", couponID, err)
	}

	usages := make([]*coupon.Usage, 0, len(usageModels))
	for i := range usageModels {
		usages = append(usages, r.mapper.UsageToDomain(&usageModels[i]))
	}
	return usages, nil
}

func (r *CouponUsageRepository) CountByCouponAndUser(ctx context.Context, couponID, userID uint) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&models.CouponUsageModel{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count coupon usages: %w", err)
	}
	return total, nil
}
