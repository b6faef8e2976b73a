package usecases

import (
	"context"

	"hoteltec/internal/domain/payment"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/id"
	"hoteltec/internal/shared/logger"
)

type CreateIntentCommand struct {
	UserID   uint
	HotelID  uint
	Amount   float64
	Currency string
	Metadata map[string]string
}

type CreateIntentResult struct {
	Intent *payment.Intent
	// NoPaymentNeeded is set for zero-amount requests; nothing is owed and
	// no intent is minted.
	NoPaymentNeeded bool
}

// CreateIntentUseCase issues a payment intent the client can settle with its
// client secret. Intents are provider-shaped but minted locally.
type CreateIntentUseCase struct {
	paymentRepo payment.PaymentRepository
	ttlMinutes  int
	logger      logger.Interface
}

func NewCreateIntentUseCase(paymentRepo payment.PaymentRepository, ttlMinutes int, logger logger.Interface) *CreateIntentUseCase {
	return &CreateIntentUseCase{
		paymentRepo: paymentRepo,
		ttlMinutes:  ttlMinutes,
		logger:      logger,
	}
}

func (uc *CreateIntentUseCase) Execute(ctx context.Context, cmd CreateIntentCommand) (*CreateIntentResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if cmd.Amount < 0 {
		return nil, apperrors.NewValidationError("amount cannot be negative")
	}
	if cmd.Amount == 0 {
		uc.logger.Infow("zero-amount intent request, nothing to collect", "user_id", cmd.UserID)
		return &CreateIntentResult{NoPaymentNeeded: true}, nil
	}

	intent, err := payment.NewIntent(id.NewPaymentIntentID(), id.NewClientSecret(), cmd.UserID, cmd.Amount, cmd.Currency, uc.ttlMinutes)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.HotelID != 0 {
		intent.LinkHotel(cmd.HotelID)
	}
	for k, v := range cmd.Metadata {
		intent.SetMetadata(k, v)
	}

	if err := uc.paymentRepo.Save(ctx, intent); err != nil {
		return nil, err
	}

	uc.logger.Infow("payment intent created",
		"intent_id", intent.IntentID(),
		"user_id", cmd.UserID,
		"amount", cmd.Amount)

	return &CreateIntentResult{Intent: intent}, nil
}
