package usecases

import (
	"context"

	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type UpdateSubscriptionCommand struct {
	SubscriptionID uint
	HotelID        uint
	UserID         uint
	// Status is the only mutable field; allowed targets are cancelled and
	// expired. Other transitions go through checkout or the webhook.
	Status *string
}

type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*subscription.Subscription, error) {
	if cmd.SubscriptionID == 0 {
		return nil, apperrors.NewValidationError("subscription ID is required")
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.HotelID() != cmd.HotelID {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if cmd.Status == nil {
		return sub, nil
	}

	switch vo.SubscriptionStatus(*cmd.Status) {
	case vo.StatusCancelled:
		if err := sub.Cancel(); err != nil {
			return nil, apperrors.NewConflictError(err.Error())
		}
	case vo.StatusExpired:
		if err := sub.MarkExpired(); err != nil {
			return nil, apperrors.NewConflictError(err.Error())
		}
	default:
		return nil, apperrors.NewValidationError("status must be cancelled or expired")
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription updated",
		"subscription_id", sub.ID(),
		"status", sub.Status().String(),
		"by_user", cmd.UserID)

	return sub, nil
}
