package usecases

import (
	"context"
	"encoding/json"

	subscriptionUC "hoteltec/internal/application/subscription/usecases"
	"hoteltec/internal/domain/payment"
	"hoteltec/internal/domain/subscription"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

const (
	EventIntentSucceeded = "payment_intent.succeeded"
	EventIntentFailed    = "payment_intent.payment_failed"
)

// WebhookEvent is the provider callback body. Signature verification happens
// before the payload reaches this use case.
type WebhookEvent struct {
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	IntentID  string `json:"intent_id"`
	Reference string `json:"reference"`
}

type HandleWebhookCommand struct {
	Payload []byte
}

type HandleWebhookResult struct {
	EventType string
	Handled   bool
}

// HandleWebhookUseCase applies provider payment outcomes. Success activates
// the pending subscription; failure marks the intent failed and cancels the
// pending subscription so the hotel can retry checkout.
type HandleWebhookUseCase struct {
	confirmSubscription *subscriptionUC.ConfirmSubscriptionUseCase
	subscriptionRepo    subscription.SubscriptionRepository
	paymentRepo         payment.PaymentRepository
	txManager           appDB.TxRunner
	logger              logger.Interface
}

func NewHandleWebhookUseCase(
	confirmSubscription *subscriptionUC.ConfirmSubscriptionUseCase,
	subscriptionRepo subscription.SubscriptionRepository,
	paymentRepo payment.PaymentRepository,
	txManager appDB.TxRunner,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		confirmSubscription: confirmSubscription,
		subscriptionRepo:    subscriptionRepo,
		paymentRepo:         paymentRepo,
		txManager:           txManager,
		logger:              logger,
	}
}

func (uc *HandleWebhookUseCase) Execute(ctx context.Context, cmd HandleWebhookCommand) (*HandleWebhookResult, error) {
	var event WebhookEvent
	if err := json.Unmarshal(cmd.Payload, &event); err != nil {
		return nil, apperrors.NewBadRequestError("invalid webhook payload")
	}
	if event.Data.IntentID == "" {
		return nil, apperrors.NewBadRequestError("webhook payload missing intent_id")
	}

	switch event.Type {
	case EventIntentSucceeded:
		_, err := uc.confirmSubscription.Execute(ctx, subscriptionUC.ConfirmSubscriptionCommand{
			TransactionID:     event.Data.IntentID,
			ProviderReference: event.Data.Reference,
		})
		if err != nil {
			return nil, err
		}
		return &HandleWebhookResult{EventType: event.Type, Handled: true}, nil

	case EventIntentFailed:
		if err := uc.handleFailure(ctx, event.Data.IntentID); err != nil {
			return nil, err
		}
		return &HandleWebhookResult{EventType: event.Type, Handled: true}, nil

	default:
		// Unknown events acknowledge without side effects so the provider
		// stops retrying.
		uc.logger.Debugw("ignoring webhook event", "type", event.Type)
		return &HandleWebhookResult{EventType: event.Type, Handled: false}, nil
	}
}

func (uc *HandleWebhookUseCase) handleFailure(ctx context.Context, intentID string) error {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		intent, err := uc.paymentRepo.GetByIntentID(txCtx, intentID)
		if err != nil {
			return err
		}
		if err := intent.Fail(); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		if err := uc.paymentRepo.Update(txCtx, intent); err != nil {
			return err
		}

		sub, err := uc.subscriptionRepo.GetByTransactionID(txCtx, intentID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil
			}
			return err
		}
		if err := sub.Cancel(); err != nil {
			// Already active or cancelled; leave it alone.
			uc.logger.Warnw("skipping subscription cancel on failed payment",
				"error", err, "subscription_id", sub.ID())
			return nil
		}
		return uc.subscriptionRepo.Update(txCtx, sub)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("payment failure processed", "intent_id", intentID)
	return nil
}
