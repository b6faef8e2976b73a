package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/coupon"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

func newValidateUseCase(repo *mockCouponRepository) *ValidateCouponUseCase {
	return NewValidateCouponUseCase(repo, logger.NewLogger())
}

func TestValidateCouponUseCase_PercentageDiscount(t *testing.T) {
	c, err := coupon.NewCoupon("SAVE20", coupon.DiscountPercentage, 20, 0, nil)
	require.NoError(t, err)

	repo := &mockCouponRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*coupon.Coupon, error) {
			assert.Equal(t, "SAVE20", code)
			return c, nil
		},
	}

	result, err := newValidateUseCase(repo).Execute(context.Background(), ValidateCouponCommand{
		Code:   "SAVE20",
		Amount: 50.00,
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.InDelta(t, 10.00, result.DiscountAmount, 0.001)
	assert.InDelta(t, 40.00, result.DiscountedTotal, 0.001)
}

func TestValidateCouponUseCase_FixedDiscountClampsToZero(t *testing.T) {
	c, err := coupon.NewCoupon("BIGOFF", coupon.DiscountFixed, 75, 0, nil)
	require.NoError(t, err)

	repo := &mockCouponRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*coupon.Coupon, error) { return c, nil },
	}

	result, err := newValidateUseCase(repo).Execute(context.Background(), ValidateCouponCommand{
		Code:   "BIGOFF",
		Amount: 50.00,
	})

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.InDelta(t, 50.00, result.DiscountAmount, 0.001)
	assert.InDelta(t, 0, result.DiscountedTotal, 0.001)
}

func TestValidateCouponUseCase_UnknownCode(t *testing.T) {
	result, err := newValidateUseCase(&mockCouponRepository{}).Execute(context.Background(), ValidateCouponCommand{
		Code: "NOPE",
	})

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "coupon code not found", result.Reason)
}

func TestValidateCouponUseCase_RejectionReasons(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)

	inactive, err := coupon.NewCoupon("OLD", coupon.DiscountPercentage, 10, 0, nil)
	require.NoError(t, err)
	inactive.Deactivate()

	expired, err := coupon.NewCoupon("LATE", coupon.DiscountPercentage, 10, 0, &past)
	require.NoError(t, err)

	capped, err := coupon.ReconstructCoupon(
		3, "FULL", "", coupon.DiscountPercentage, 10,
		5, 5, true, nil, time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)

	// Inactive and expired at once still reports inactive first.
	both, err := coupon.NewCoupon("BOTH", coupon.DiscountPercentage, 10, 0, &past)
	require.NoError(t, err)
	both.Deactivate()

	tests := []struct {
		name   string
		coupon *coupon.Coupon
		reason string
	}{
		{"inactive", inactive, "coupon is not active"},
		{"expired", expired, "coupon has expired"},
		{"usage cap", capped, "coupon usage limit reached"},
		{"inactive wins over expired", both, "coupon is not active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCouponRepository{
				GetByCodeFunc: func(ctx context.Context, code string) (*coupon.Coupon, error) {
					return tt.coupon, nil
				},
			}

			result, err := newValidateUseCase(repo).Execute(context.Background(), ValidateCouponCommand{
				Code:   tt.coupon.Code(),
				Amount: 100,
			})

			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.reason, result.Reason)
			assert.Zero(t, result.DiscountAmount)
		})
	}
}

func TestValidateCouponUseCase_EmptyCode(t *testing.T) {
	_, err := newValidateUseCase(&mockCouponRepository{}).Execute(context.Background(), ValidateCouponCommand{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCreateCouponUseCase_DuplicateCode(t *testing.T) {
	repo := &mockCouponRepository{
		SaveFunc: func(ctx context.Context, c *coupon.Coupon) error {
			return fmt.Errorf("Error 1062 (23000): Duplicate entry '%s' for key 'coupons.code'", c.Code())
		},
	}

	uc := NewCreateCouponUseCase(repo, logger.NewLogger())
	_, err := uc.Execute(context.Background(), CreateCouponCommand{
		Code:          "TWICE",
		DiscountType:  "percentage",
		DiscountValue: 15,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreateCouponUseCase_UppercasesCode(t *testing.T) {
	var saved *coupon.Coupon
	repo := &mockCouponRepository{
		SaveFunc: func(ctx context.Context, c *coupon.Coupon) error {
			saved = c
			return c.SetID(7)
		},
	}

	uc := NewCreateCouponUseCase(repo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateCouponCommand{
		Code:          "welcome10",
		DiscountType:  "fixed",
		DiscountValue: 10,
		MaxUses:       100,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "WELCOME10", result.Code())
}
