package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper *mappers.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	if s.ID() == 0 {
		return s.SetID(model.ID)
	}
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update subscription %d: %w", s.ID(), err)
	}
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription %d: %w", id, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SubscriptionRepository) GetCurrentByHotelID(ctx context.Context, hotelID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription for hotel %d: %w", hotelID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SubscriptionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription by transaction %q: %w", transactionID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SubscriptionRepository) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.SubscriptionModel{})

	if filter.HotelID != nil {
		query = query.Where("hotel_id = ?", *filter.HotelID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}
	var subModels []models.SubscriptionModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&subModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(subModels))
	for i := range subModels {
		s, err := r.mapper.ToDomain(&subModels[i])
		if err != nil {
			return nil, 0, err
		}
		subs = append(subs, s)
	}
	return subs, total, nil
}

func (r *SubscriptionRepository) CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("status = ?", status.String()).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions by status: %w", err)
	}
	return total, nil
}

func (r *SubscriptionRepository) SumAmountPaid(ctx context.Context, statuses []vo.SubscriptionStatus) (float64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.SubscriptionModel{})

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, s.String())
		}
		query = query.Where("status IN ?", values)
	}

	var sum *float64
	if err := query.Select("SUM(amount_paid)").Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum subscription amounts: %w", err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *SubscriptionRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
	db := appDB.GetTxFromContext(ctx, r.db)

	var subModels []models.SubscriptionModel
	err := db.WithContext(ctx).
		Where("status IN ? AND end_date IS NOT NULL AND end_date < ?",
			[]string{vo.StatusActive.String(), vo.StatusTrial.String()}, asOf).
		Find(&subModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(subModels))
	for i := range subModels {
		s, err := r.mapper.ToDomain(&subModels[i])
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

func (r *SubscriptionRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("hotel_id = ?", hotelID).Delete(&models.SubscriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete subscriptions for hotel %d: %w", hotelID, err)
	}
	return nil
}
