package models

import (
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// HotelModel represents the database persistence model for hotel tenants
type HotelModel struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"not null;size:150"`
	Slug            string `gorm:"uniqueIndex;not null;size:150"`
	OwnerID         *uint  `gorm:"index:idx_hotels_owner_id"`
	ContactEmail    string `gorm:"size:255"`
	ContactPhone    string `gorm:"size:50"`
	Address         string `gorm:"size:500"`
	LogoURL         string `gorm:"size:500"`
	Status          string `gorm:"not null;default:active;size:20"`
	MaintenanceMode bool   `gorm:"not null;default:false"`
	CatalogSeeded   bool   `gorm:"not null;default:false"`
	Version         int    `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (HotelModel) TableName() string {
	return constants.TableHotels
}

// BeforeCreate hook for GORM
func (h *HotelModel) BeforeCreate(tx *gorm.DB) error {
	if h.Status == "" {
		h.Status = "active"
	}
	if h.Version == 0 {
		h.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (h *HotelModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", h.Version+1)
	return nil
}
