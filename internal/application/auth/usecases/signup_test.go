package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

func newSignupUseCase(
	userRepo *mockUserRepository,
	hotelRepo *mockHotelRepository,
	subRepo *mockSubscriptionRepository,
	planRepo *mockPlanRepository,
) *SignupUseCase {
	return NewSignupUseCase(
		userRepo, hotelRepo, subRepo, planRepo,
		&mockHasher{}, &mockTokenIssuer{}, &mockTxRunner{}, logger.NewLogger(),
	)
}

func activePlans(t *testing.T) []*subscription.Plan {
	t.Helper()
	free, err := subscription.NewPlan("free", "Free", 0, 1, 5)
	require.NoError(t, err)
	require.NoError(t, free.SetID(1))
	pro, err := subscription.NewPlan("pro", "Pro", 49.99, 1, 50)
	require.NoError(t, err)
	require.NoError(t, pro.SetID(2))
	return []*subscription.Plan{free, pro}
}

func TestSignupUseCase_CreatesOwnerHotelAndTrial(t *testing.T) {
	var savedUser *user.User
	var savedHotel *hotel.Hotel
	var savedSub *subscription.Subscription

	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			savedUser = u
			return u.SetID(5)
		},
	}
	hotelRepo := &mockHotelRepository{
		SaveFunc: func(ctx context.Context, h *hotel.Hotel) error {
			savedHotel = h
			return h.SetID(9)
		},
	}
	subRepo := &mockSubscriptionRepository{
		SaveFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			savedSub = sub
			return sub.SetID(3)
		},
	}
	planRepo := &mockPlanRepository{
		ListActiveFunc: func(ctx context.Context) ([]*subscription.Plan, error) {
			return activePlans(t), nil
		},
	}

	uc := newSignupUseCase(userRepo, hotelRepo, subRepo, planRepo)
	result, err := uc.Execute(context.Background(), SignupCommand{
		Email:     "Owner@Example.COM",
		Password:  "s3cretpass",
		Name:      "Grace",
		HotelName: "Sea View Hotel",
	})

	require.NoError(t, err)
	require.NotNil(t, savedUser)
	require.NotNil(t, savedHotel)
	require.NotNil(t, savedSub)

	assert.Equal(t, "owner@example.com", result.User.Email())
	assert.Equal(t, user.RoleHotelOwner, result.User.Role())
	require.NotNil(t, result.User.HotelID())
	assert.Equal(t, uint(9), *result.User.HotelID())

	assert.Equal(t, "sea-view-hotel", result.Hotel.Slug())
	require.NotNil(t, result.Hotel.OwnerID())
	assert.Equal(t, uint(5), *result.Hotel.OwnerID())

	// Trial lands on the first paid plan, not the free one.
	assert.Equal(t, uint(2), result.Subscription.PlanID())
	assert.Equal(t, vo.StatusTrial, result.Subscription.Status())

	assert.NotEmpty(t, result.Token)
}

func TestSignupUseCase_MissingFields(t *testing.T) {
	uc := newSignupUseCase(&mockUserRepository{}, &mockHotelRepository{}, &mockSubscriptionRepository{}, &mockPlanRepository{})

	_, err := uc.Execute(context.Background(), SignupCommand{Email: "a@b.com"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"password", "name", "hotel_name"}, appErr.MissingFields)
}

func TestSignupUseCase_ShortPassword(t *testing.T) {
	uc := newSignupUseCase(&mockUserRepository{}, &mockHotelRepository{}, &mockSubscriptionRepository{}, &mockPlanRepository{})

	_, err := uc.Execute(context.Background(), SignupCommand{
		Email:     "a@b.com",
		Password:  "short",
		Name:      "Grace",
		HotelName: "Sea View",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestSignupUseCase_DuplicateEmail(t *testing.T) {
	existing, err := user.NewUser("owner@example.com", "Grace", "hash", user.RoleHotelOwner)
	require.NoError(t, err)

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}

	uc := newSignupUseCase(userRepo, &mockHotelRepository{}, &mockSubscriptionRepository{}, &mockPlanRepository{})
	_, err = uc.Execute(context.Background(), SignupCommand{
		Email:     "owner@example.com",
		Password:  "s3cretpass",
		Name:      "Grace",
		HotelName: "Sea View",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestSignupUseCase_NoPlansSkipsTrial(t *testing.T) {
	uc := newSignupUseCase(&mockUserRepository{}, &mockHotelRepository{}, &mockSubscriptionRepository{}, &mockPlanRepository{})

	result, err := uc.Execute(context.Background(), SignupCommand{
		Email:     "a@b.com",
		Password:  "s3cretpass",
		Name:      "Grace",
		HotelName: "Sea View",
	})

	require.NoError(t, err)
	assert.Nil(t, result.Subscription)
	assert.NotNil(t, result.Hotel)
}
