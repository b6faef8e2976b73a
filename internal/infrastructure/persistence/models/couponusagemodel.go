package models

import (
	"time"

	"hoteltec/internal/shared/constants"
)

// CouponUsageModel records one redemption of a coupon by a user
type CouponUsageModel struct {
	ID             uint `gorm:"primarykey"`
	CouponID       uint `gorm:"not null;index:idx_coupon_usages_coupon_id"`
	UserID         uint `gorm:"not null;index:idx_coupon_usages_user_id"`
	SubscriptionID *uint
	UsedAt         time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (CouponUsageModel) TableName() string {
	return constants.TableCouponUsages
}
