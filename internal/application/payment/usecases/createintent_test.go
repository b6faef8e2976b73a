package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/payment"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type mockPaymentRepository struct {
	SaveFunc func(ctx context.Context, intent *payment.Intent) error
}

func (m *mockPaymentRepository) Save(ctx context.Context, intent *payment.Intent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, intent)
	}
	return intent.SetID(1)
}

func (m *mockPaymentRepository) Update(ctx context.Context, intent *payment.Intent) error {
	return nil
}

func (m *mockPaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Intent, error) {
	return nil, apperrors.NewNotFoundError("payment not found")
}

func (m *mockPaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*payment.Intent, error) {
	return nil, apperrors.NewNotFoundError("payment not found")
}

func (m *mockPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Intent, error) {
	return nil, apperrors.NewNotFoundError("payment not found")
}

func (m *mockPaymentRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*payment.Intent, int64, error) {
	return nil, 0, nil
}

func TestCreateIntentUseCase_MintsIntent(t *testing.T) {
	var saved *payment.Intent
	repo := &mockPaymentRepository{
		SaveFunc: func(ctx context.Context, intent *payment.Intent) error {
			saved = intent
			return intent.SetID(1)
		},
	}

	uc := NewCreateIntentUseCase(repo, 30, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateIntentCommand{
		UserID:   3,
		HotelID:  7,
		Amount:   39.99,
		Currency: "usd",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Intent)
	assert.False(t, result.NoPaymentNeeded)
	require.NotNil(t, saved)
	assert.Equal(t, 39.99, saved.Amount())
	assert.NotEmpty(t, saved.IntentID())
	assert.NotEmpty(t, saved.ClientSecret())
}

func TestCreateIntentUseCase_ZeroAmountNeedsNoPayment(t *testing.T) {
	repo := &mockPaymentRepository{
		SaveFunc: func(ctx context.Context, intent *payment.Intent) error {
			t.Error("no intent may be minted when nothing is owed")
			return nil
		},
	}

	uc := NewCreateIntentUseCase(repo, 30, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateIntentCommand{
		UserID: 3,
		Amount: 0,
	})

	require.NoError(t, err)
	assert.True(t, result.NoPaymentNeeded)
	assert.Nil(t, result.Intent)
}

func TestCreateIntentUseCase_RejectsNegativeAmount(t *testing.T) {
	uc := NewCreateIntentUseCase(&mockPaymentRepository{}, 30, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateIntentCommand{
		UserID: 3,
		Amount: -1,
	})

	assert.True(t, apperrors.IsValidationError(err))
}
