package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type CouponRepository struct {
	db     *gorm.DB
	mapper *mappers.CouponMapper
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{
		db:     db,
		mapper: mappers.NewCouponMapper(),
	}
}

func (r *CouponRepository) Save(ctx context.Context, c *coupon.Coupon) error {
	model := r.mapper.ToModel(c)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("coupon code already exists")
		}
		return fmt.Errorf("failed to save coupon: %w", err)
	}

	if c.ID() == 0 {
		return c.SetID(model.ID)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	model := r.mapper.ToModel(c)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update coupon %d: %w", c.ID(), err)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, couponID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.CouponModel{}, couponID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete coupon %d: %w", couponID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("coupon not found")
	}
	return nil
}

func (r *CouponRepository) GetByID(ctx context.Context, couponID uint) (*coupon.Coupon, error) {
	var model models.CouponModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("coupon not found")
		}
		return nil, fmt.Errorf("failed to get coupon %d: %w", couponID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	var model models.CouponModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("coupon not found")
		}
		return nil, fmt.Errorf("failed to get coupon %q: %w", code, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CouponRepository) List(ctx context.Context, page, pageSize int) ([]*coupon.Coupon, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.CouponModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count coupons: %w", err)
	}

	p := utils.Pagination{Page: page, PageSize: pageSize}
	var couponModels []models.CouponModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&couponModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list coupons: %w", err)
	}

	coupons := make([]*coupon.Coupon, 0, len(couponModels))
	for i := range couponModels {
		c, err := r.mapper.ToDomain(&couponModels[i])
		if err != nil {
			return nil, 0, err
		}
		coupons = append(coupons, c)
	}
	return coupons, total, nil
}

// IncrementUsage bumps current_uses with a guard so the counter never passes
// max_uses. A max_uses of zero means unlimited. Returns false when no row
// matched the guard.
func (r *CouponRepository) IncrementUsage(ctx context.Context, couponID uint) (bool, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).
		Model(&models.CouponModel{}).
		Where("id = ? AND (max_uses = 0 OR current_uses < max_uses)", couponID).
		UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
	if result.Error != nil {
		return false, fmt.Errorf("failed to increment usage for coupon %d: %w", couponID, result.Error)
	}
	return result.RowsAffected > 0, nil
}
