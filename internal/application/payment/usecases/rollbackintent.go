package usecases

import (
	"context"

	"hoteltec/internal/domain/payment"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type RollbackIntentCommand struct {
	TransactionID string
	UserID        uint
}

// RollbackIntentUseCase cancels a pending payment intent when the client
// abandons checkout before the provider reports an outcome.
type RollbackIntentUseCase struct {
	paymentRepo payment.PaymentRepository
	logger      logger.Interface
}

func NewRollbackIntentUseCase(
	paymentRepo payment.PaymentRepository,
	logger logger.Interface,
) *RollbackIntentUseCase {
	return &RollbackIntentUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *RollbackIntentUseCase) Execute(ctx context.Context, cmd RollbackIntentCommand) (*payment.Intent, error) {
	if cmd.TransactionID == "" {
		return nil, apperrors.NewValidationError("transaction ID is required")
	}

	intent, err := uc.paymentRepo.GetByTransactionID(ctx, cmd.TransactionID)
	if err != nil {
		return nil, err
	}
	if cmd.UserID != 0 && intent.UserID() != cmd.UserID {
		return nil, apperrors.NewNotFoundError("payment not found")
	}

	if err := intent.Cancel(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := uc.paymentRepo.Update(ctx, intent); err != nil {
		return nil, err
	}

	uc.logger.Infow("payment intent rolled back",
		"intent_id", intent.IntentID(),
		"transaction_id", cmd.TransactionID)

	return intent, nil
}
