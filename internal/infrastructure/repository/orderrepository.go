package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/domain/order"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper *mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("order number already claimed")
		}
		return fmt.Errorf("failed to save order: %w", err)
	}

	if o.ID() == 0 {
		return o.SetID(model.ID)
	}
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update order %d: %w", o.ID(), err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	var model models.OrderModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("order_id = ?", orderID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order %q: %w", orderID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrderRepository) GetByHotelID(ctx context.Context, hotelID uint, filter order.OrderFilter) ([]*order.Order, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.OrderModel{}).Where("hotel_id = ?", hotelID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.RoomNumber != "" {
		query = query.Where("room_number = ?", filter.RoomNumber)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}
	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(orderModels))
	for i := range orderModels {
		o, err := r.mapper.ToDomain(&orderModels[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *OrderRepository) CountByHotelID(ctx context.Context, hotelID uint) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("hotel_id = ?", hotelID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count orders for hotel %d: %w", hotelID, err)
	}
	return total, nil
}

func (r *OrderRepository) SumTotals(ctx context.Context, hotelID *uint, from, to *time.Time) (float64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("status <> ?", "cancelled")

	if hotelID != nil {
		query = query.Where("hotel_id = ?", *hotelID)
	}
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var sum *float64
	if err := query.Select("SUM(total)").Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum order totals: %w", err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *OrderRepository) CountSince(ctx context.Context, hotelID *uint, since time.Time) (int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("created_at >= ?", since)

	if hotelID != nil {
		query = query.Where("hotel_id = ?", *hotelID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

func (r *OrderRepository) CountBetween(ctx context.Context, hotelID *uint, from, to *time.Time) (int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.OrderModel{})

	if hotelID != nil {
		query = query.Where("hotel_id = ?", *hotelID)
	}
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

func (r *OrderRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("hotel_id = ?", hotelID).Delete(&models.OrderModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete orders for hotel %d: %w", hotelID, err)
	}
	return nil
}
