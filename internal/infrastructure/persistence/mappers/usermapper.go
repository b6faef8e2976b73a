package mappers

import (
	"fmt"

	"hoteltec/internal/domain/user"
	"hoteltec/internal/infrastructure/persistence/models"
)

// UserMapper converts between the user domain aggregate and its
// persistence model
type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                    u.ID(),
		Email:                 u.Email(),
		Name:                  u.Name(),
		PasswordHash:          u.PasswordHash(),
		Role:                  string(u.Role()),
		HotelID:               u.HotelID(),
		CurrentSubscriptionID: u.CurrentSubscriptionID(),
		Status:                string(u.Status()),
		LastLoginAt:           u.LastLoginAt(),
		Version:               u.Version(),
		CreatedAt:             u.CreatedAt(),
		UpdatedAt:             u.UpdatedAt(),
	}
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	u, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		user.Role(model.Role),
		model.HotelID,
		model.CurrentSubscriptionID,
		user.Status(model.Status),
		model.LastLoginAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}
