package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/user"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type UserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email already registered")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	if u.ID() == 0 {
		return u.SetID(model.ID)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user %d: %w", u.ID(), err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.UserModel{}, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByHotelID(ctx context.Context, hotelID uint) ([]*user.User, error) {
	var userModels []models.UserModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("hotel_id = ?", hotelID).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get users for hotel %d: %w", hotelID, err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.UserModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}
	var userModels []models.UserModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, nil
}

func (r *UserRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("hotel_id = ?", hotelID).Delete(&models.UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete users for hotel %d: %w", hotelID, err)
	}
	return nil
}
