package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// PaymentModel represents the database persistence model for payment intents
type PaymentModel struct {
	ID             uint    `gorm:"primarykey"`
	IntentID       string  `gorm:"uniqueIndex;not null;size:64"`
	ClientSecret   string  `gorm:"not null;size:128"`
	UserID         uint    `gorm:"not null;index:idx_payments_user_id"`
	HotelID        *uint   `gorm:"index:idx_payments_hotel_id"`
	SubscriptionID *uint   `gorm:"index:idx_payments_subscription_id"`
	Amount         float64 `gorm:"not null"`
	Currency       string  `gorm:"not null;default:usd;size:10"`
	Status         string  `gorm:"not null;default:pending;size:20;index:idx_payments_status"`
	TransactionID  *string `gorm:"size:64;index:idx_payments_transaction_id"`
	Metadata       datatypes.JSON
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return constants.TablePayments
}

// BeforeCreate hook for GORM
func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = "pending"
	}
	if p.Currency == "" {
		p.Currency = "usd"
	}
	return nil
}
