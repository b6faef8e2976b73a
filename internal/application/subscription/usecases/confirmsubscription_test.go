package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/domain/payment"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

func pendingSubscription(t *testing.T, txnID string) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewPendingSubscription(1, 2, 3, 49.99)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(11))
	require.NoError(t, sub.AttachTransaction(txnID))
	return sub
}

func pendingIntent(t *testing.T, intentID string) *payment.Intent {
	t.Helper()
	intent, err := payment.NewIntent(intentID, "cs_secret", 2, 49.99, "usd", 30)
	require.NoError(t, err)
	require.NoError(t, intent.SetID(20))
	return intent
}

func TestConfirmSubscriptionUseCase_ActivatesPending(t *testing.T) {
	sub := pendingSubscription(t, "pi_abc")
	intent := pendingIntent(t, "pi_abc")
	plan := testPlan(t, 3, "pro", 49.99, 1)

	var updatedSub *subscription.Subscription
	var updatedIntent *payment.Intent

	subRepo := &mockSubscriptionRepository{
		GetByTransactionIDFunc: func(ctx context.Context, txnID string) (*subscription.Subscription, error) {
			assert.Equal(t, "pi_abc", txnID)
			return sub, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			updatedSub = s
			return nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) { return plan, nil },
	}
	paymentRepo := &mockPaymentRepository{
		GetByIntentIDFunc: func(ctx context.Context, intentID string) (*payment.Intent, error) {
			return intent, nil
		},
		UpdateFunc: func(ctx context.Context, i *payment.Intent) error {
			updatedIntent = i
			return nil
		},
	}

	uc := NewConfirmSubscriptionUseCase(subRepo, planRepo, paymentRepo, &mockUserRepository{}, &mockCouponRepository{}, &mockUsageRepository{}, &mockNotificationRepository{}, &mockTxRunner{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ConfirmSubscriptionCommand{
		TransactionID:     "pi_abc",
		ProviderReference: "ch_123",
	})

	require.NoError(t, err)
	require.NotNil(t, updatedSub)
	require.NotNil(t, updatedIntent)

	assert.Equal(t, vo.StatusActive, result.Status())
	require.NotNil(t, result.EndDate())
	expectedEnd := time.Now().UTC().AddDate(0, 0, plan.PeriodDays())
	assert.WithinDuration(t, expectedEnd, *result.EndDate(), 5*time.Second)

	assert.Equal(t, payment.StatusSucceeded, updatedIntent.Status())
	require.NotNil(t, updatedIntent.TransactionID())
	assert.Equal(t, "ch_123", *updatedIntent.TransactionID())
}

func TestConfirmSubscriptionUseCase_UnknownTransaction(t *testing.T) {
	uc := NewConfirmSubscriptionUseCase(&mockSubscriptionRepository{}, &mockPlanRepository{}, &mockPaymentRepository{}, &mockUserRepository{}, &mockCouponRepository{}, &mockUsageRepository{}, &mockNotificationRepository{}, &mockTxRunner{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ConfirmSubscriptionCommand{TransactionID: "pi_missing"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestConfirmSubscriptionUseCase_AlreadyActiveConflicts(t *testing.T) {
	sub := pendingSubscription(t, "pi_dup")
	require.NoError(t, sub.Activate(30))
	plan := testPlan(t, 3, "pro", 49.99, 1)

	subRepo := &mockSubscriptionRepository{
		GetByTransactionIDFunc: func(ctx context.Context, txnID string) (*subscription.Subscription, error) {
			return sub, nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) { return plan, nil },
	}

	uc := NewConfirmSubscriptionUseCase(subRepo, planRepo, &mockPaymentRepository{}, &mockUserRepository{}, &mockCouponRepository{}, &mockUsageRepository{}, &mockNotificationRepository{}, &mockTxRunner{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ConfirmSubscriptionCommand{TransactionID: "pi_dup"})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestConfirmSubscriptionUseCase_MissingTransactionID(t *testing.T) {
	uc := NewConfirmSubscriptionUseCase(&mockSubscriptionRepository{}, &mockPlanRepository{}, &mockPaymentRepository{}, &mockUserRepository{}, &mockCouponRepository{}, &mockUsageRepository{}, &mockNotificationRepository{}, &mockTxRunner{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ConfirmSubscriptionCommand{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestConfirmSubscriptionUseCase_UpdatesOwnerMirror(t *testing.T) {
	sub := pendingSubscription(t, "pi_mirror")
	plan := testPlan(t, 3, "pro", 49.99, 1)

	subRepo := &mockSubscriptionRepository{
		GetByTransactionIDFunc: func(ctx context.Context, txnID string) (*subscription.Subscription, error) {
			return sub, nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) { return plan, nil },
	}
	var pointedAt *uint
	userRepo := &mockUserRepository{
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			pointedAt = u.CurrentSubscriptionID()
			return nil
		},
	}

	uc := NewConfirmSubscriptionUseCase(subRepo, planRepo, &mockPaymentRepository{}, userRepo, &mockCouponRepository{}, &mockUsageRepository{}, &mockNotificationRepository{}, &mockTxRunner{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), ConfirmSubscriptionCommand{TransactionID: "pi_mirror"})

	require.NoError(t, err)
	require.NotNil(t, pointedAt)
	assert.Equal(t, result.ID(), *pointedAt)
}

func TestConfirmSubscriptionUseCase_RecordsCouponRedemption(t *testing.T) {
	sub := pendingSubscription(t, "pi_coupon")
	require.NoError(t, sub.ApplyCoupon(5, 39.99))
	plan := testPlan(t, 3, "pro", 49.99, 1)

	subRepo := &mockSubscriptionRepository{
		GetByTransactionIDFunc: func(ctx context.Context, txnID string) (*subscription.Subscription, error) {
			return sub, nil
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) { return plan, nil },
	}
	incremented := make(chan uint, 1)
	couponRepo := &mockCouponRepository{
		IncrementUsageFunc: func(ctx context.Context, couponID uint) (bool, error) {
			incremented <- couponID
			return true, nil
		},
	}
	savedUsage := make(chan *coupon.Usage, 1)
	usageRepo := &mockUsageRepository{
		SaveFunc: func(ctx context.Context, usage *coupon.Usage) error {
			savedUsage <- usage
			return nil
		},
	}

	uc := NewConfirmSubscriptionUseCase(subRepo, planRepo, &mockPaymentRepository{}, &mockUserRepository{}, couponRepo, usageRepo, &mockNotificationRepository{}, &mockTxRunner{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), ConfirmSubscriptionCommand{TransactionID: "pi_coupon"})
	require.NoError(t, err)

	select {
	case id := <-incremented:
		assert.Equal(t, uint(5), id)
	case <-time.After(2 * time.Second):
		t.Fatal("coupon usage was never incremented")
	}
	select {
	case usage := <-savedUsage:
		assert.Equal(t, uint(5), usage.CouponID())
		assert.Equal(t, sub.UserID(), usage.UserID())
	case <-time.After(2 * time.Second):
		t.Fatal("coupon usage row was never written")
	}
}
