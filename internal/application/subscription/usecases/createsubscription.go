package usecases

import (
	"context"

	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/domain/payment"
	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/domain/user"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/goroutine"
	"hoteltec/internal/shared/id"
	"hoteltec/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	HotelID    uint
	UserID     uint
	PlanID     uint
	CouponCode string
	StartTrial bool
}

type CreateSubscriptionResult struct {
	Subscription *subscription.Subscription
	Plan         *subscription.Plan
	// Intent is set for paid plans; the client completes checkout with its
	// client secret and the subscription activates on confirmation.
	Intent         *payment.Intent
	DiscountAmount float64
	AmountDue      float64
	// NoPaymentNeeded is set when a coupon wiped the full price and the
	// subscription activated without checkout.
	NoPaymentNeeded bool
}

// CreateSubscriptionUseCase starts a trial or opens a pending paid
// subscription with a payment intent. Coupon redemption counters move at
// confirmation, not here; an abandoned checkout must not burn a redemption.
type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	couponRepo       coupon.CouponRepository
	usageRepo        coupon.UsageRepository
	paymentRepo      payment.PaymentRepository
	userRepo         user.UserRepository
	txManager        appDB.TxRunner
	intentTTLMinutes int
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	couponRepo coupon.CouponRepository,
	usageRepo coupon.UsageRepository,
	paymentRepo payment.PaymentRepository,
	userRepo user.UserRepository,
	txManager appDB.TxRunner,
	intentTTLMinutes int,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		couponRepo:       couponRepo,
		usageRepo:        usageRepo,
		paymentRepo:      paymentRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		intentTTLMinutes: intentTTLMinutes,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*CreateSubscriptionResult, error) {
	if cmd.HotelID == 0 || cmd.UserID == 0 || cmd.PlanID == 0 {
		return nil, apperrors.NewValidationError("hotel, user, and plan are required")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive() {
		return nil, apperrors.NewValidationError("plan is no longer available")
	}

	current, err := uc.subscriptionRepo.GetCurrentByHotelID(ctx, cmd.HotelID)
	if err != nil && !apperrors.IsNotFoundError(err) {
		return nil, err
	}
	if current != nil && current.IsUsable() {
		return nil, apperrors.NewConflictError("hotel already has an active subscription")
	}

	if cmd.StartTrial || plan.IsFree() {
		return uc.startTrial(ctx, cmd, plan)
	}
	return uc.startPaid(ctx, cmd, plan)
}

func (uc *CreateSubscriptionUseCase) startTrial(ctx context.Context, cmd CreateSubscriptionCommand, plan *subscription.Plan) (*CreateSubscriptionResult, error) {
	var sub *subscription.Subscription
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sub, err = subscription.NewTrialSubscription(cmd.HotelID, cmd.UserID, plan.ID())
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Save(txCtx, sub); err != nil {
			return err
		}
		return uc.pointUserAtSubscription(txCtx, cmd.UserID, sub.ID())
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("trial subscription started",
		"hotel_id", cmd.HotelID,
		"plan", plan.Name(),
		"ends_at", sub.EndDate())

	return &CreateSubscriptionResult{Subscription: sub, Plan: plan}, nil
}

func (uc *CreateSubscriptionUseCase) startPaid(ctx context.Context, cmd CreateSubscriptionCommand, plan *subscription.Plan) (*CreateSubscriptionResult, error) {
	price := plan.Price()
	var appliedCoupon *coupon.Coupon
	var discount float64

	if cmd.CouponCode != "" {
		c, err := uc.couponRepo.GetByCode(ctx, cmd.CouponCode)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewValidationError("coupon code not found")
			}
			return nil, err
		}
		if err := c.CheckRedeemable(); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		discount = c.DiscountAmount(price)
		price = c.Apply(price)
		appliedCoupon = c
	}

	// A full discount leaves nothing to collect; the subscription activates
	// immediately without an intent.
	if price <= 0 {
		return uc.activateWithoutPayment(ctx, cmd, plan, appliedCoupon, discount)
	}

	var sub *subscription.Subscription
	var intent *payment.Intent

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sub, err = subscription.NewPendingSubscription(cmd.HotelID, cmd.UserID, plan.ID(), price)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if appliedCoupon != nil {
			if err := sub.ApplyCoupon(appliedCoupon.ID(), price); err != nil {
				return err
			}
		}

		intentID := id.NewPaymentIntentID()
		if err := sub.AttachTransaction(intentID); err != nil {
			return err
		}
		if err := uc.subscriptionRepo.Save(txCtx, sub); err != nil {
			return err
		}

		intent, err = payment.NewIntent(intentID, id.NewClientSecret(), cmd.UserID, price, "usd", uc.intentTTLMinutes)
		if err != nil {
			return err
		}
		intent.LinkHotel(cmd.HotelID)
		intent.LinkSubscription(sub.ID())
		intent.SetMetadata("plan", plan.Name())

		return uc.paymentRepo.Save(txCtx, intent)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("pending subscription created",
		"hotel_id", cmd.HotelID,
		"plan", plan.Name(),
		"amount_due", price,
		"intent_id", intent.IntentID())

	return &CreateSubscriptionResult{
		Subscription:   sub,
		Plan:           plan,
		Intent:         intent,
		DiscountAmount: discount,
		AmountDue:      price,
	}, nil
}

// activateWithoutPayment handles the zero-payable checkout. Activation is the
// confirmation here, so the coupon redemption is recorded right away.
func (uc *CreateSubscriptionUseCase) activateWithoutPayment(
	ctx context.Context,
	cmd CreateSubscriptionCommand,
	plan *subscription.Plan,
	appliedCoupon *coupon.Coupon,
	discount float64,
) (*CreateSubscriptionResult, error) {
	var sub *subscription.Subscription

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sub, err = subscription.NewPendingSubscription(cmd.HotelID, cmd.UserID, plan.ID(), 0)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if appliedCoupon != nil {
			if err := sub.ApplyCoupon(appliedCoupon.ID(), 0); err != nil {
				return err
			}
		}
		if err := sub.Activate(plan.PeriodDays()); err != nil {
			return err
		}
		if err := uc.subscriptionRepo.Save(txCtx, sub); err != nil {
			return err
		}
		return uc.pointUserAtSubscription(txCtx, cmd.UserID, sub.ID())
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscription activated without payment",
		"hotel_id", cmd.HotelID,
		"plan", plan.Name(),
		"discount", discount)

	if appliedCoupon != nil {
		uc.recordCouponUsage(appliedCoupon, cmd.UserID, sub.ID())
	}

	return &CreateSubscriptionResult{
		Subscription:    sub,
		Plan:            plan,
		DiscountAmount:  discount,
		AmountDue:       0,
		NoPaymentNeeded: true,
	}, nil
}

// pointUserAtSubscription keeps the owner's current-subscription mirror in
// step with a subscription that is usable immediately.
func (uc *CreateSubscriptionUseCase) pointUserAtSubscription(ctx context.Context, userID, subscriptionID uint) error {
	owner, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	subID := subscriptionID
	owner.SetCurrentSubscription(&subID)
	return uc.userRepo.Update(ctx, owner)
}

// recordCouponUsage bumps the coupon counter and writes the usage row after
// the sale is committed. Failures are logged only.
func (uc *CreateSubscriptionUseCase) recordCouponUsage(c *coupon.Coupon, userID, subscriptionID uint) {
	goroutine.SafeGo(uc.logger, "coupon.usage", func() {
		ctx := context.Background()

		ok, err := uc.couponRepo.IncrementUsage(ctx, c.ID())
		if err != nil {
			uc.logger.Warnw("failed to increment coupon usage", "error", err, "coupon", c.Code())
			return
		}
		if !ok {
			uc.logger.Warnw("coupon usage cap reached after redemption", "coupon", c.Code())
		}

		subID := subscriptionID
		usage, err := coupon.NewUsage(c.ID(), userID, &subID)
		if err != nil {
			uc.logger.Warnw("failed to build coupon usage record", "error", err, "coupon", c.Code())
			return
		}
		if err := uc.usageRepo.Save(ctx, usage); err != nil {
			uc.logger.Warnw("failed to save coupon usage record", "error", err, "coupon", c.Code())
		}
	})
}
