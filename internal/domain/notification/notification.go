package notification

import (
	"fmt"
	"strings"
	"time"

	"hoteltec/internal/shared/biztime"
)

type Type string

const (
	TypeOrderPlaced         Type = "order_placed"
	TypeOrderStatusChanged  Type = "order_status_changed"
	TypeSubscriptionExpiry  Type = "subscription_expiry"
	TypeSubscriptionChanged Type = "subscription_changed"
	TypeTicketReply         Type = "ticket_reply"
	TypeSystem              Type = "system"
)

// Notification represents one in-app notification for a dashboard user
type Notification struct {
	id        uint
	userID    uint
	hotelID   *uint
	notifType Type
	title     string
	message   string
	data      map[string]string
	isRead    bool
	readAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewNotification creates an unread notification
func NewNotification(userID uint, hotelID *uint, notifType Type, title, message string) (*Notification, error) {
	title = strings.TrimSpace(title)
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if notifType == "" {
		return nil, fmt.Errorf("notification type is required")
	}
	if title == "" {
		return nil, fmt.Errorf("notification title is required")
	}

	now := biztime.NowUTC()
	return &Notification{
		userID:    userID,
		hotelID:   hotelID,
		notifType: notifType,
		title:     title,
		message:   strings.TrimSpace(message),
		data:      make(map[string]string),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructNotification reconstructs a notification from persistence
func ReconstructNotification(
	id, userID uint,
	hotelID *uint,
	notifType Type,
	title, message string,
	data map[string]string,
	isRead bool,
	readAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if data == nil {
		data = make(map[string]string)
	}
	return &Notification{
		id:        id,
		userID:    userID,
		hotelID:   hotelID,
		notifType: notifType,
		title:     title,
		message:   message,
		data:      data,
		isRead:    isRead,
		readAt:    readAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) HotelID() *uint       { return n.hotelID }
func (n *Notification) Type() Type           { return n.notifType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) ReadAt() *time.Time   { return n.readAt }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time { return n.updatedAt }

// Data returns a copy of the structured payload
func (n *Notification) Data() map[string]string {
	m := make(map[string]string, len(n.data))
	for k, v := range n.data {
		m[k] = v
	}
	return m
}

// SetData stores a structured payload entry
func (n *Notification) SetData(key, value string) {
	n.data[key] = value
	n.updatedAt = biztime.NowUTC()
}

// SetID assigns the persistence identity after the first save
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead stamps the notification as read. Marking twice is a no-op.
func (n *Notification) MarkRead() {
	if n.isRead {
		return
	}
	now := biztime.NowUTC()
	n.isRead = true
	n.readAt = &now
	n.updatedAt = now
}
