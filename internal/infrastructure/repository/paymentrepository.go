package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/payment"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type PaymentRepository struct {
	db     *gorm.DB
	mapper *mappers.PaymentMapper
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
	}
}

func (r *PaymentRepository) Save(ctx context.Context, intent *payment.Intent) error {
	model, err := r.mapper.ToModel(intent)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save payment intent: %w", err)
	}

	if intent.ID() == 0 {
		return intent.SetID(model.ID)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, intent *payment.Intent) error {
	model, err := r.mapper.ToModel(intent)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update payment intent %d: %w", intent.ID(), err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Intent, error) {
	var model models.PaymentModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		return nil, fmt.Errorf("failed to get payment %d: %w", id, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*payment.Intent, error) {
	var model models.PaymentModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("intent_id = ?", intentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		return nil, fmt.Errorf("failed to get payment %q: %w", intentID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Intent, error) {
	var model models.PaymentModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		return nil, fmt.Errorf("failed to get payment by transaction %q: %w", transactionID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PaymentRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*payment.Intent, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.PaymentModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	p := utils.Pagination{Page: page, PageSize: pageSize}
	var paymentModels []models.PaymentModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&paymentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	intents := make([]*payment.Intent, 0, len(paymentModels))
	for i := range paymentModels {
		intent, err := r.mapper.ToDomain(&paymentModels[i])
		if err != nil {
			return nil, 0, err
		}
		intents = append(intents, intent)
	}
	return intents, total, nil
}
