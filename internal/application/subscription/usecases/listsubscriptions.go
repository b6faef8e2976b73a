package usecases

import (
	"context"

	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	apperrors "hoteltec/internal/shared/errors"
)

type ListSubscriptionsCommand struct {
	HotelID  uint
	Status   string
	Page     int
	PageSize int
}

type ListSubscriptionsResult struct {
	Subscriptions []*subscription.Subscription
	Total         int64
}

// ListSubscriptionsUseCase returns the hotel's subscription history, newest
// first, with an optional status filter.
type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
}

func NewListSubscriptionsUseCase(subscriptionRepo subscription.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{subscriptionRepo: subscriptionRepo}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, cmd ListSubscriptionsCommand) (*ListSubscriptionsResult, error) {
	if cmd.HotelID == 0 {
		return nil, apperrors.NewValidationError("hotel ID is required")
	}

	hotelID := cmd.HotelID
	filter := subscription.SubscriptionFilter{
		HotelID:  &hotelID,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Status != "" {
		status, err := vo.NewSubscriptionStatus(cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	subs, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListSubscriptionsResult{Subscriptions: subs, Total: total}, nil
}
