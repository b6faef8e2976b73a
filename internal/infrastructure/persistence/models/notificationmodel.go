package models

import (
	"time"

	"gorm.io/datatypes"

	"hoteltec/internal/shared/constants"
)

// NotificationModel represents the database persistence model for in-app
// notifications
type NotificationModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_notifications_user_id"`
	HotelID   *uint  `gorm:"index:idx_notifications_hotel_id"`
	Type      string `gorm:"not null;size:50"`
	Title     string `gorm:"not null;size:200"`
	Message   string `gorm:"not null;size:1000"`
	Data      datatypes.JSON
	IsRead    bool      `gorm:"not null;default:false;index:idx_notifications_is_read"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index:idx_notifications_created_at"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
