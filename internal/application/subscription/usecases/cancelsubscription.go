package usecases

import (
	"context"

	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/domain/user"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	HotelID uint
	UserID  uint
	// SubscriptionID targets a specific subscription; zero falls back to the
	// hotel's current one.
	SubscriptionID uint
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	userRepo         user.UserRepository
	txManager        appDB.TxRunner
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	userRepo user.UserRepository,
	txManager appDB.TxRunner,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*subscription.Subscription, error) {
	if cmd.HotelID == 0 {
		return nil, apperrors.NewValidationError("hotel ID is required")
	}

	var sub *subscription.Subscription
	var err error
	if cmd.SubscriptionID != 0 {
		sub, err = uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
		if err != nil {
			return nil, err
		}
		if sub.HotelID() != cmd.HotelID {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
	} else {
		sub, err = uc.subscriptionRepo.GetCurrentByHotelID(ctx, cmd.HotelID)
		if err != nil {
			return nil, err
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := sub.Cancel(); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return err
		}

		// Clear the owner's mirror only if it still points at this
		// subscription.
		owner, err := uc.userRepo.GetByID(txCtx, sub.UserID())
		if err != nil {
			return err
		}
		if owner.CurrentSubscriptionID() != nil && *owner.CurrentSubscriptionID() == sub.ID() {
			owner.SetCurrentSubscription(nil)
			if err := uc.userRepo.Update(txCtx, owner); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription cancelled",
		"subscription_id", sub.ID(),
		"hotel_id", cmd.HotelID,
		"by_user", cmd.UserID)

	return sub, nil
}
