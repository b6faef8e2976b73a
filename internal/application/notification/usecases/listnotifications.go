package usecases

import (
	"context"

	"hoteltec/internal/domain/notification"
	apperrors "hoteltec/internal/shared/errors"
)

type ListNotificationsCommand struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResult struct {
	Notifications []*notification.Notification
	Total         int64
	UnreadCount   int64
}

type ListNotificationsUseCase struct {
	notifRepo notification.NotificationRepository
}

func NewListNotificationsUseCase(notifRepo notification.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notifRepo: notifRepo}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, cmd ListNotificationsCommand) (*ListNotificationsResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}

	notifications, total, err := uc.notifRepo.ListByUserID(ctx, cmd.UserID, cmd.UnreadOnly, cmd.Page, cmd.PageSize)
	if err != nil {
		return nil, err
	}

	unread, err := uc.notifRepo.CountUnread(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	return &ListNotificationsResult{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}
