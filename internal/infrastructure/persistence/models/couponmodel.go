package models

import (
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// CouponModel represents the database persistence model for discount coupons
type CouponModel struct {
	ID            uint    `gorm:"primarykey"`
	Code          string  `gorm:"uniqueIndex;not null;size:50"`
	Description   string  `gorm:"size:255"`
	DiscountType  string  `gorm:"not null;size:20"`
	DiscountValue float64 `gorm:"not null"`
	MaxUses       int     `gorm:"not null;default:0"`
	CurrentUses   int     `gorm:"not null;default:0"`
	IsActive      bool    `gorm:"not null;default:true"`
	ExpiresAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CouponModel) TableName() string {
	return constants.TableCoupons
}
