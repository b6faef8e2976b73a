package usecases

import (
	"context"

	"hoteltec/internal/domain/notification"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type MarkAllReadUseCase struct {
	notifRepo notification.NotificationRepository
	logger    logger.Interface
}

func NewMarkAllReadUseCase(notifRepo notification.NotificationRepository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notifRepo: notifRepo, logger: logger}
}

// Execute marks every unread notification as read and returns how many
// changed.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, apperrors.NewValidationError("user ID is required")
	}

	updated, err := uc.notifRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}

	uc.logger.Debugw("notifications marked read", "user_id", userID, "count", updated)
	return updated, nil
}
