package models

import (
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// hotel subscriptions
type SubscriptionModel struct {
	ID            uint    `gorm:"primarykey"`
	HotelID       uint    `gorm:"not null;index:idx_subscriptions_hotel_id"`
	UserID        uint    `gorm:"not null;index:idx_subscriptions_user_id"`
	PlanID        uint    `gorm:"not null"`
	Status        string  `gorm:"not null;default:pending;size:20;index:idx_subscriptions_status"`
	StartDate     *time.Time
	EndDate       *time.Time `gorm:"index:idx_subscriptions_end_date"`
	AmountPaid    float64    `gorm:"not null;default:0"`
	CouponID      *uint
	TransactionID *string `gorm:"size:64;index:idx_subscriptions_transaction_id"`
	CancelledAt   *time.Time
	Version       int `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = "pending"
	}
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (s *SubscriptionModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", s.Version+1)
	return nil
}
