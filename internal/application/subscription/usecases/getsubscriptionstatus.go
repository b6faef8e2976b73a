package usecases

import (
	"context"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/goroutine"
	"hoteltec/internal/shared/logger"
)

type GetSubscriptionStatusCommand struct {
	HotelID uint
}

// SubscriptionStatusResult reports what the hotel can actually do rather
// than pretending a missing subscription is a plan.
type SubscriptionStatusResult struct {
	Subscription  *subscription.Subscription
	Plan          *subscription.Plan
	HasActive     bool
	OnTrial       bool
	DaysRemaining int
	MaxProducts   int
	ProductCount  int64
	CanAddProduct bool
}

// GetSubscriptionStatusUseCase reports the hotel's current entitlements.
// Expiry is applied lazily here: a subscription past its end date is marked
// expired on read instead of waiting for a sweeper.
type GetSubscriptionStatusUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	productRepo      catalog.ProductRepository
	notifRepo        notification.NotificationRepository
	logger           logger.Interface
}

func NewGetSubscriptionStatusUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	productRepo catalog.ProductRepository,
	notifRepo notification.NotificationRepository,
	logger logger.Interface,
) *GetSubscriptionStatusUseCase {
	return &GetSubscriptionStatusUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		productRepo:      productRepo,
		notifRepo:        notifRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionStatusUseCase) Execute(ctx context.Context, cmd GetSubscriptionStatusCommand) (*SubscriptionStatusResult, error) {
	if cmd.HotelID == 0 {
		return nil, apperrors.NewValidationError("hotel ID is required")
	}

	productCount, err := uc.productRepo.CountByHotelID(ctx, cmd.HotelID)
	if err != nil {
		return nil, err
	}

	result := &SubscriptionStatusResult{
		MaxProducts:  subscription.FreeTierMaxProducts,
		ProductCount: productCount,
	}

	sub, err := uc.subscriptionRepo.GetCurrentByHotelID(ctx, cmd.HotelID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			result.CanAddProduct = productCount < int64(result.MaxProducts)
			return result, nil
		}
		return nil, err
	}

	if sub.IsExpired() {
		uc.expire(ctx, sub)
	}

	result.Subscription = sub
	result.HasActive = sub.IsUsable()
	result.OnTrial = sub.Status() == vo.StatusTrial && sub.IsUsable()
	result.DaysRemaining = sub.DaysRemaining()

	if plan, err := uc.planRepo.GetByID(ctx, sub.PlanID()); err == nil {
		result.Plan = plan
		if result.HasActive {
			result.MaxProducts = plan.MaxProducts()
		}
	} else {
		uc.logger.Warnw("failed to load plan for status", "error", err, "plan_id", sub.PlanID())
	}

	result.CanAddProduct = productCount < int64(result.MaxProducts)
	return result, nil
}

func (uc *GetSubscriptionStatusUseCase) expire(ctx context.Context, sub *subscription.Subscription) {
	if err := sub.MarkExpired(); err != nil {
		return
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Warnw("failed to persist lazy expiry", "error", err, "subscription_id", sub.ID())
		return
	}

	uc.logger.Infow("subscription expired", "subscription_id", sub.ID(), "hotel_id", sub.HotelID())

	goroutine.SafeGo(uc.logger, "subscription.expiry.notify", func() {
		hotelID := sub.HotelID()
		n, err := notification.NewNotification(
			sub.UserID(),
			&hotelID,
			notification.TypeSubscriptionExpiry,
			"Subscription expired",
			"Your subscription has ended. Renew to keep your full catalog available.",
		)
		if err != nil {
			return
		}
		if err := uc.notifRepo.Save(context.Background(), n); err != nil {
			uc.logger.Warnw("failed to save expiry notification", "error", err, "hotel_id", hotelID)
		}
	})
}
