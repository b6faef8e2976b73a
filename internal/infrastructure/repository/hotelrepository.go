package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type HotelRepository struct {
	db     *gorm.DB
	mapper *mappers.HotelMapper
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{
		db:     db,
		mapper: mappers.NewHotelMapper(),
	}
}

func (r *HotelRepository) Save(ctx context.Context, h *hotel.Hotel) error {
	model := r.mapper.ToModel(h)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("hotel slug already taken")
		}
		return fmt.Errorf("failed to save hotel: %w", err)
	}

	if h.ID() == 0 {
		return h.SetID(model.ID)
	}
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	model := r.mapper.ToModel(h)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update hotel %d: %w", h.ID(), err)
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, hotelID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.HotelModel{}, hotelID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete hotel %d: %w", hotelID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("hotel not found")
	}
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
	var model models.HotelModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to get hotel %d: %w", hotelID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HotelRepository) GetBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	var model models.HotelModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to get hotel by slug %q: %w", slug, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HotelRepository) GetBySlugPrefix(ctx context.Context, prefix string) (*hotel.Hotel, error) {
	var model models.HotelModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("slug LIKE ?", prefix+"%").
		Order("slug ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to get hotel by slug prefix %q: %w", prefix, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HotelRepository) GetByName(ctx context.Context, name string) (*hotel.Hotel, error) {
	var model models.HotelModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to get hotel by name %q: %w", name, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HotelRepository) SearchByName(ctx context.Context, fragment string) (*hotel.Hotel, error) {
	var model models.HotelModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("name LIKE ?", "%"+fragment+"%").
		Order("name ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("hotel not found")
		}
		return nil, fmt.Errorf("failed to search hotel by name %q: %w", fragment, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *HotelRepository) List(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.HotelModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR slug LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count hotels: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}
	var hotelModels []models.HotelModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&hotelModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list hotels: %w", err)
	}

	hotels := make([]*hotel.Hotel, 0, len(hotelModels))
	for i := range hotelModels {
		h, err := r.mapper.ToDomain(&hotelModels[i])
		if err != nil {
			return nil, 0, err
		}
		hotels = append(hotels, h)
	}
	return hotels, total, nil
}

func (r *HotelRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.HotelModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}
	return total, nil
}
