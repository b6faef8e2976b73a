package usecases

import (
	"context"

	"hoteltec/internal/domain/notification"
	apperrors "hoteltec/internal/shared/errors"
)

type MarkNotificationReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkNotificationReadUseCase struct {
	notifRepo notification.NotificationRepository
}

func NewMarkNotificationReadUseCase(notifRepo notification.NotificationRepository) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{notifRepo: notifRepo}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*notification.Notification, error) {
	n, err := uc.notifRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID() != cmd.UserID {
		return nil, apperrors.NewNotFoundError("notification not found")
	}

	if n.IsRead() {
		return n, nil
	}

	n.MarkRead()
	if err := uc.notifRepo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
