package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

func registeredUser(t *testing.T, email, password string) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "Grace", "hashed:"+password, user.RoleHotelOwner)
	require.NoError(t, err)
	require.NoError(t, u.SetID(5))
	return u
}

func TestLoginUseCase_Success(t *testing.T) {
	u := registeredUser(t, "owner@example.com", "s3cretpass")

	var updated *user.User
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "owner@example.com", email)
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, usr *user.User) error {
			updated = usr
			return nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "Owner@Example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, updated)
	assert.NotNil(t, updated.LastLoginAt())
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	u := registeredUser(t, "owner@example.com", "s3cretpass")

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "owner@example.com",
		Password: "wrongpass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginUseCase_UnknownEmailSameMessage(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_SuspendedAccount(t *testing.T) {
	u := registeredUser(t, "owner@example.com", "s3cretpass")
	u.Suspend()

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "owner@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}
