package usecases

import (
	"context"
	"fmt"
	"time"

	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
)

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByHotelID(ctx context.Context, hotelID uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error { return nil }

type mockHotelRepository struct {
	SaveFunc func(ctx context.Context, h *hotel.Hotel) error
}

func (m *mockHotelRepository) Save(ctx context.Context, h *hotel.Hotel) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	return h.SetID(1)
}

func (m *mockHotelRepository) Update(ctx context.Context, h *hotel.Hotel) error { return nil }
func (m *mockHotelRepository) Delete(ctx context.Context, hotelID uint) error   { return nil }

func (m *mockHotelRepository) GetByID(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) GetBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) GetBySlugPrefix(ctx context.Context, prefix string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) GetByName(ctx context.Context, name string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) SearchByName(ctx context.Context, fragment string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (m *mockHotelRepository) List(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, int64, error) {
	return nil, 0, nil
}

func (m *mockHotelRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockSubscriptionRepository struct {
	SaveFunc func(ctx context.Context, sub *subscription.Subscription) error
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return sub.SetID(1)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) GetCurrentByHotelID(ctx context.Context, hotelID uint) (*subscription.Subscription, error) {
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*subscription.Subscription, error) {
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	return nil, 0, nil
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error) {
	return 0, nil
}

func (m *mockSubscriptionRepository) SumAmountPaid(ctx context.Context, statuses []vo.SubscriptionStatus) (float64, error) {
	return 0, nil
}

func (m *mockSubscriptionRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	return nil
}

type mockPlanRepository struct {
	ListActiveFunc func(ctx context.Context) ([]*subscription.Plan, error)
}

func (m *mockPlanRepository) Save(ctx context.Context, plan *subscription.Plan) error   { return nil }
func (m *mockPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error { return nil }

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	return nil, apperrors.NewNotFoundError("plan not found")
}

func (m *mockPlanRepository) GetByName(ctx context.Context, name string) (*subscription.Plan, error) {
	return nil, apperrors.NewNotFoundError("plan not found")
}

func (m *mockPlanRepository) ListActive(ctx context.Context) ([]*subscription.Plan, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	return nil, nil
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role string) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

type mockTxRunner struct{}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
