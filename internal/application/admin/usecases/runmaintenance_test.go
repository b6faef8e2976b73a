package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	ListOverdueFunc func(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error)
	UpdateFunc      func(ctx context.Context, sub *subscription.Subscription) error
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}
func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}
func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, nil
}
func (m *mockSubscriptionRepository) GetCurrentByHotelID(ctx context.Context, hotelID uint) (*subscription.Subscription, error) {
	return nil, nil
}
func (m *mockSubscriptionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*subscription.Subscription, error) {
	return nil, nil
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
	if m.ListOverdueFunc != nil {
		return m.ListOverdueFunc(ctx, asOf)
	}
	return nil, nil
}
func (m *mockSubscriptionRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	return nil
}

type mockNotificationRepository struct {
	DeleteReadBeforeFunc func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return nil
}
func (m *mockNotificationRepository) SaveBatch(ctx context.Context, ns []*notification.Notification) error {
	return nil
}
func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return nil
}
func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, nil
}
func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}
func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (m *mockNotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	if m.DeleteReadBeforeFunc != nil {
		return m.DeleteReadBeforeFunc(ctx, before)
	}
	return 0, nil
}

func overdueSubscription(t *testing.T, id uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewTrialSubscription(1, 2, 3)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(id))
	return sub
}

func TestRunMaintenanceUseCase_ExpiresAndPurges(t *testing.T) {
	subs := []*subscription.Subscription{
		overdueSubscription(t, 11),
		overdueSubscription(t, 12),
	}

	var updated []uint
	subRepo := &mockSubscriptionRepository{
		ListOverdueFunc: func(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
			return subs, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			updated = append(updated, s.ID())
			return nil
		},
	}
	notifRepo := &mockNotificationRepository{
		DeleteReadBeforeFunc: func(ctx context.Context, before time.Time) (int64, error) {
			return 5, nil
		},
	}

	uc := NewRunMaintenanceUseCase(subRepo, notifRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.ExpiredSubscriptions)
	assert.Equal(t, int64(5), result.PurgedNotifications)
	assert.Equal(t, []uint{11, 12}, updated)
	for _, s := range subs {
		assert.Equal(t, vo.StatusExpired, s.Status())
	}
}

func TestRunMaintenanceUseCase_SkipsFailedRows(t *testing.T) {
	cancelled := overdueSubscription(t, 13)
	require.NoError(t, cancelled.Cancel())

	subRepo := &mockSubscriptionRepository{
		ListOverdueFunc: func(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{cancelled, overdueSubscription(t, 14)}, nil
		},
	}

	uc := NewRunMaintenanceUseCase(subRepo, &mockNotificationRepository{}, logger.NewLogger())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.ExpiredSubscriptions)
}
