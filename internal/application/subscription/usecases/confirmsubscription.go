package usecases

import (
	"context"
	"fmt"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/payment"
	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/domain/user"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/goroutine"
	"hoteltec/internal/shared/logger"
)

type ConfirmSubscriptionCommand struct {
	// TransactionID is the payment intent id attached when the pending
	// subscription was created.
	TransactionID string
	// ProviderReference is the upstream charge id from the webhook, kept on
	// the payment record for reconciliation.
	ProviderReference string
}

// ConfirmSubscriptionUseCase flips a pending subscription to active once its
// payment settles. Activation, the payment status change, and the owner's
// current-subscription pointer commit together; the coupon redemption and the
// owner notification are post-commit best effort.
type ConfirmSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	paymentRepo      payment.PaymentRepository
	userRepo         user.UserRepository
	couponRepo       coupon.CouponRepository
	usageRepo        coupon.UsageRepository
	notifRepo        notification.NotificationRepository
	txManager        appDB.TxRunner
	logger           logger.Interface
}

func NewConfirmSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	paymentRepo payment.PaymentRepository,
	userRepo user.UserRepository,
	couponRepo coupon.CouponRepository,
	usageRepo coupon.UsageRepository,
	notifRepo notification.NotificationRepository,
	txManager appDB.TxRunner,
	logger logger.Interface,
) *ConfirmSubscriptionUseCase {
	return &ConfirmSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		paymentRepo:      paymentRepo,
		userRepo:         userRepo,
		couponRepo:       couponRepo,
		usageRepo:        usageRepo,
		notifRepo:        notifRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *ConfirmSubscriptionUseCase) Execute(ctx context.Context, cmd ConfirmSubscriptionCommand) (*subscription.Subscription, error) {
	if cmd.TransactionID == "" {
		return nil, apperrors.NewValidationError("transaction ID is required")
	}

	var sub *subscription.Subscription
	var plan *subscription.Plan

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sub, err = uc.subscriptionRepo.GetByTransactionID(txCtx, cmd.TransactionID)
		if err != nil {
			return err
		}

		plan, err = uc.planRepo.GetByID(txCtx, sub.PlanID())
		if err != nil {
			return err
		}

		if err := sub.Activate(plan.PeriodDays()); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return err
		}

		owner, err := uc.userRepo.GetByID(txCtx, sub.UserID())
		if err != nil {
			return err
		}
		subID := sub.ID()
		owner.SetCurrentSubscription(&subID)
		if err := uc.userRepo.Update(txCtx, owner); err != nil {
			return err
		}

		intent, err := uc.paymentRepo.GetByIntentID(txCtx, cmd.TransactionID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				// Subscription predates the intent record; activation alone
				// is still correct.
				return nil
			}
			return err
		}

		reference := cmd.ProviderReference
		if reference == "" {
			reference = cmd.TransactionID
		}
		if err := intent.Succeed(reference); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		return uc.paymentRepo.Update(txCtx, intent)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription confirmed",
		"subscription_id", sub.ID(),
		"hotel_id", sub.HotelID(),
		"plan", plan.Name(),
		"transaction_id", cmd.TransactionID)

	if sub.CouponID() != nil {
		uc.recordCouponRedemption(*sub.CouponID(), sub.UserID(), sub.ID())
	}
	uc.notifyOwner(sub, plan)

	return sub, nil
}

// recordCouponRedemption moves the coupon counter only once the sale is
// confirmed; an abandoned checkout never burns a redemption. Failures are
// logged only.
func (uc *ConfirmSubscriptionUseCase) recordCouponRedemption(couponID, userID, subscriptionID uint) {
	goroutine.SafeGo(uc.logger, "subscription.confirm.coupon", func() {
		ctx := context.Background()

		ok, err := uc.couponRepo.IncrementUsage(ctx, couponID)
		if err != nil {
			uc.logger.Warnw("failed to increment coupon usage", "error", err, "coupon_id", couponID)
			return
		}
		if !ok {
			uc.logger.Warnw("coupon usage cap reached after redemption", "coupon_id", couponID)
		}

		subID := subscriptionID
		usage, err := coupon.NewUsage(couponID, userID, &subID)
		if err != nil {
			uc.logger.Warnw("failed to build coupon usage record", "error", err, "coupon_id", couponID)
			return
		}
		if err := uc.usageRepo.Save(ctx, usage); err != nil {
			uc.logger.Warnw("failed to save coupon usage record", "error", err, "coupon_id", couponID)
		}
	})
}

func (uc *ConfirmSubscriptionUseCase) notifyOwner(sub *subscription.Subscription, plan *subscription.Plan) {
	goroutine.SafeGo(uc.logger, "subscription.confirm.notify", func() {
		hotelID := sub.HotelID()
		n, err := notification.NewNotification(
			sub.UserID(),
			&hotelID,
			notification.TypeSubscriptionChanged,
			"Subscription active",
			fmt.Sprintf("Your %s plan is now active for %d days.", plan.DisplayName(), plan.PeriodDays()),
		)
		if err != nil {
			return
		}
		if err := uc.notifRepo.Save(context.Background(), n); err != nil {
			uc.logger.Warnw("failed to save subscription notification", "error", err, "hotel_id", hotelID)
		}
	})
}
