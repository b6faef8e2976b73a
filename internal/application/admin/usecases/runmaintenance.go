package usecases

import (
	"context"
	"time"

	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/shared/biztime"
	"hoteltec/internal/shared/logger"
)

// Read notifications older than this get purged by the maintenance sweep.
const notificationRetention = 90 * 24 * time.Hour

type MaintenanceResult struct {
	ExpiredSubscriptions int   `json:"expired_subscriptions"`
	PurgedNotifications  int64 `json:"purged_notifications"`
}

// RunMaintenanceUseCase is the platform housekeeping sweep: it expires
// subscriptions whose period has lapsed and purges stale read notifications.
// Failures on individual subscriptions are logged and skipped so one bad row
// does not stall the sweep.
type RunMaintenanceUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewRunMaintenanceUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *RunMaintenanceUseCase {
	return &RunMaintenanceUseCase{
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *RunMaintenanceUseCase) Execute(ctx context.Context) (*MaintenanceResult, error) {
	now := biztime.NowUTC()
	result := &MaintenanceResult{}

	overdue, err := uc.subscriptionRepo.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, sub := range overdue {
		if err := sub.MarkExpired(); err != nil {
			uc.logger.Warnw("skipping subscription during sweep",
				"subscription_id", sub.ID(), "error", err)
			continue
		}
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			uc.logger.Warnw("failed to persist expired subscription",
				"subscription_id", sub.ID(), "error", err)
			continue
		}
		result.ExpiredSubscriptions++
	}

	purged, err := uc.notificationRepo.DeleteReadBefore(ctx, now.Add(-notificationRetention))
	if err != nil {
		return nil, err
	}
	result.PurgedNotifications = purged

	uc.logger.Infow("maintenance sweep completed",
		"expired_subscriptions", result.ExpiredSubscriptions,
		"purged_notifications", result.PurgedNotifications)

	return result, nil
}
