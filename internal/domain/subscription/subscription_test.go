package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "hoteltec/internal/domain/subscription/valueobjects"
)

func TestNewTrialSubscription(t *testing.T) {
	s, err := NewTrialSubscription(1, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusTrial, s.Status())
	require.NotNil(t, s.StartDate())
	require.NotNil(t, s.EndDate())

	wantEnd := s.StartDate().AddDate(0, 0, TrialDays)
	assert.WithinDuration(t, wantEnd, *s.EndDate(), time.Second)
	assert.True(t, s.IsUsable())
}

func TestNewTrialSubscription_Validation(t *testing.T) {
	tests := []struct {
		name    string
		hotelID uint
		userID  uint
		planID  uint
	}{
		{"missing hotel", 0, 2, 3},
		{"missing user", 1, 0, 3},
		{"missing plan", 1, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTrialSubscription(tt.hotelID, tt.userID, tt.planID)
			assert.Error(t, err)
		})
	}
}

func TestSubscription_Activate(t *testing.T) {
	t.Run("pending becomes active with paid period", func(t *testing.T) {
		s, err := NewPendingSubscription(1, 2, 3, 49.99)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusPending, s.Status())

		require.NoError(t, s.Activate(90))

		assert.Equal(t, vo.StatusActive, s.Status())
		require.NotNil(t, s.EndDate())
		wantEnd := s.StartDate().AddDate(0, 0, 90)
		assert.WithinDuration(t, wantEnd, *s.EndDate(), time.Second)
	})

	t.Run("trial upgrades to active", func(t *testing.T) {
		s, err := NewTrialSubscription(1, 2, 3)
		require.NoError(t, err)

		require.NoError(t, s.Activate(30))
		assert.Equal(t, vo.StatusActive, s.Status())
	})

	t.Run("cancelled cannot activate", func(t *testing.T) {
		s, err := NewPendingSubscription(1, 2, 3, 10)
		require.NoError(t, err)
		require.NoError(t, s.Cancel())

		assert.Error(t, s.Activate(30))
	})

	t.Run("rejects non-positive period", func(t *testing.T) {
		s, err := NewPendingSubscription(1, 2, 3, 10)
		require.NoError(t, err)

		assert.Error(t, s.Activate(0))
	})
}

func TestSubscription_Cancel(t *testing.T) {
	s, err := NewTrialSubscription(1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, s.Cancel())
	assert.Equal(t, vo.StatusCancelled, s.Status())
	assert.NotNil(t, s.CancelledAt())
	assert.False(t, s.IsUsable())

	assert.Error(t, s.Cancel())
}

func TestSubscription_ApplyCoupon(t *testing.T) {
	s, err := NewPendingSubscription(1, 2, 3, 100)
	require.NoError(t, err)

	require.NoError(t, s.ApplyCoupon(7, 80))
	require.NotNil(t, s.CouponID())
	assert.Equal(t, uint(7), *s.CouponID())
	assert.Equal(t, float64(80), s.AmountPaid())

	assert.Error(t, s.ApplyCoupon(0, 80))
}

func TestSubscription_AttachTransaction(t *testing.T) {
	s, err := NewPendingSubscription(1, 2, 3, 100)
	require.NoError(t, err)

	require.NoError(t, s.AttachTransaction("txn_abc123"))
	require.NotNil(t, s.TransactionID())
	assert.Equal(t, "txn_abc123", *s.TransactionID())

	assert.Error(t, s.AttachTransaction(""))
}

func TestPlan_PeriodDays(t *testing.T) {
	tests := []struct {
		name          string
		billingMonths int
		want          int
	}{
		{"monthly", 1, 30},
		{"quarterly", 3, 90},
		{"yearly", 12, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlan("pro", "Pro", 49.99, tt.billingMonths, 50)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.PeriodDays())
		})
	}
}

func TestNewPlan_Validation(t *testing.T) {
	_, err := NewPlan("", "Free", 0, 1, 5)
	assert.Error(t, err)

	_, err = NewPlan("free", "Free", -1, 1, 5)
	assert.Error(t, err)

	_, err = NewPlan("free", "Free", 0, 0, 5)
	assert.Error(t, err)
}
