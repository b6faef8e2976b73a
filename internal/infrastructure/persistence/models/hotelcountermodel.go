package models

import (
	"time"

	"hoteltec/internal/shared/constants"
)

// HotelCounterModel holds the per-hotel order number sequence. One row per
// hotel; the next order number is claimed with an atomic UPDATE so two
// concurrent orders can never share a number.
type HotelCounterModel struct {
	HotelID         uint  `gorm:"primarykey;autoIncrement:false"`
	LastOrderNumber int64 `gorm:"not null;default:0"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (HotelCounterModel) TableName() string {
	return constants.TableHotelCounters
}
