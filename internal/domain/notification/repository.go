package notification

import (
	"context"
	"time"
)

type NotificationRepository interface {
	Save(ctx context.Context, n *Notification) error
	SaveBatch(ctx context.Context, ns []*Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	// DeleteReadBefore removes read notifications older than the cutoff.
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}
