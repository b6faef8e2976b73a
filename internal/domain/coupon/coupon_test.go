package coupon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/shared/biztime"
)

func newTestCoupon(t *testing.T, discountType DiscountType, value float64, maxUses int, expiresAt *time.Time) *Coupon {
	t.Helper()
	c, err := NewCoupon("SAVE10", discountType, value, maxUses, expiresAt)
	require.NoError(t, err)
	return c
}

func TestNewCoupon(t *testing.T) {
	t.Run("uppercases the code", func(t *testing.T) {
		c, err := NewCoupon("save10", DiscountPercentage, 10, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", c.Code())
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewCoupon("", DiscountPercentage, 10, 0, nil)
		assert.Error(t, err)
	})

	t.Run("rejects percentage over 100", func(t *testing.T) {
		_, err := NewCoupon("BIG", DiscountPercentage, 150, 0, nil)
		assert.Error(t, err)
	})

	t.Run("rejects unknown discount type", func(t *testing.T) {
		_, err := NewCoupon("ODD", DiscountType("half-off"), 10, 0, nil)
		assert.Error(t, err)
	})

	t.Run("rejects zero discount value", func(t *testing.T) {
		_, err := NewCoupon("ZERO", DiscountFixed, 0, 0, nil)
		assert.Error(t, err)
	})
}

func TestCoupon_CheckRedeemable(t *testing.T) {
	t.Run("valid coupon passes", func(t *testing.T) {
		c := newTestCoupon(t, DiscountPercentage, 10, 5, nil)
		assert.NoError(t, c.CheckRedeemable())
	})

	t.Run("inactive fails first", func(t *testing.T) {
		past := biztime.NowUTC().Add(-time.Hour)
		c, err := ReconstructCoupon(1, "SAVE10", "", DiscountPercentage, 10, 5, 5, false, &past, biztime.NowUTC(), biztime.NowUTC())
		require.NoError(t, err)

		// inactive, expired, and over cap at once: the active check wins
		assert.ErrorIs(t, c.CheckRedeemable(), ErrInactive)
	})

	t.Run("expiry checked before usage cap", func(t *testing.T) {
		past := biztime.NowUTC().Add(-time.Hour)
		c, err := ReconstructCoupon(1, "SAVE10", "", DiscountPercentage, 10, 5, 5, true, &past, biztime.NowUTC(), biztime.NowUTC())
		require.NoError(t, err)

		assert.ErrorIs(t, c.CheckRedeemable(), ErrExpired)
	})

	t.Run("usage cap reached", func(t *testing.T) {
		c, err := ReconstructCoupon(1, "SAVE10", "", DiscountPercentage, 10, 3, 3, true, nil, biztime.NowUTC(), biztime.NowUTC())
		require.NoError(t, err)

		assert.ErrorIs(t, c.CheckRedeemable(), ErrUsageCapHit)
	})

	t.Run("zero max uses means unlimited", func(t *testing.T) {
		c, err := ReconstructCoupon(1, "SAVE10", "", DiscountPercentage, 10, 0, 9999, true, nil, biztime.NowUTC(), biztime.NowUTC())
		require.NoError(t, err)

		assert.NoError(t, c.CheckRedeemable())
	})
}

func TestCoupon_DiscountAmount(t *testing.T) {
	tests := []struct {
		name         string
		discountType DiscountType
		value        float64
		price        float64
		want         float64
	}{
		{"percentage takes fraction of price", DiscountPercentage, 20, 100, 20},
		{"percentage of odd price", DiscountPercentage, 15, 49.99, 49.99 * 15 / 100},
		{"fixed under price", DiscountFixed, 30, 100, 30},
		{"fixed capped at price", DiscountFixed, 150, 100, 100},
		{"zero price yields zero discount", DiscountPercentage, 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCoupon(t, tt.discountType, tt.value, 0, nil)
			assert.InDelta(t, tt.want, c.DiscountAmount(tt.price), 0.0001)
		})
	}
}

func TestCoupon_Apply(t *testing.T) {
	t.Run("never goes below zero", func(t *testing.T) {
		c := newTestCoupon(t, DiscountFixed, 500, 0, nil)
		assert.Equal(t, float64(0), c.Apply(99.99))
	})

	t.Run("percentage applies to final price", func(t *testing.T) {
		c := newTestCoupon(t, DiscountPercentage, 25, 0, nil)
		assert.InDelta(t, 75.0, c.Apply(100), 0.0001)
	})
}
