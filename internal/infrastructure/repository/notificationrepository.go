package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/domain/notification"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper *mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	if n.ID() == 0 {
		return n.SetID(model.ID)
	}
	return nil
}

func (r *NotificationRepository) SaveBatch(ctx context.Context, ns []*notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	notifModels := make([]*models.NotificationModel, 0, len(ns))
	for _, n := range ns {
		model, err := r.mapper.ToModel(n)
		if err != nil {
			return err
		}
		notifModels = append(notifModels, model)
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(&notifModels).Error; err != nil {
		return fmt.Errorf("failed to save notification batch: %w", err)
	}
	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update notification %d: %w", n.ID(), err)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to get notification %d: %w", id, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	p := utils.Pagination{Page: page, PageSize: pageSize}
	var notifModels []models.NotificationModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&notifModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, 0, len(notifModels))
	for i := range notifModels {
		n, err := r.mapper.ToDomain(&notifModels[i])
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return total, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, before).
		Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge read notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}
