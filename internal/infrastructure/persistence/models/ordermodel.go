package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// OrderModel represents the database persistence model for guest orders.
// Items are stored as a JSON snapshot of name, price, and quantity at order
// time, so later catalog edits never rewrite order history.
type OrderModel struct {
	ID            uint           `gorm:"primarykey"`
	OrderID       string         `gorm:"uniqueIndex;not null;size:32"`
	HotelID       uint           `gorm:"not null;index:idx_orders_hotel_id;uniqueIndex:idx_orders_hotel_number,priority:1"`
	OrderNumber   int64          `gorm:"not null;uniqueIndex:idx_orders_hotel_number,priority:2"`
	RoomNumber    string         `gorm:"not null;size:20"`
	GuestName     string         `gorm:"not null;size:100"`
	PhoneNumber   string         `gorm:"not null;size:30"`
	GuestEmail    string         `gorm:"size:255"`
	Items         datatypes.JSON `gorm:"not null"`
	Subtotal      float64        `gorm:"not null"`
	Total         float64        `gorm:"not null"`
	Status        string         `gorm:"not null;default:pending;size:20;index:idx_orders_status"`
	PaymentMethod string         `gorm:"size:30"`
	Notes         string         `gorm:"size:1000"`
	Version       int            `gorm:"not null;default:1"`
	CreatedAt     time.Time      `gorm:"index:idx_orders_created_at"`
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}

// BeforeCreate hook for GORM
func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = "pending"
	}
	if o.Version == 0 {
		o.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (o *OrderModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", o.Version+1)
	return nil
}
