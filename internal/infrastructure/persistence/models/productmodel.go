package models

import (
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// ProductModel represents the database persistence model for catalog products
type ProductModel struct {
	ID          uint    `gorm:"primarykey"`
	HotelID     uint    `gorm:"not null;index:idx_products_hotel_id"`
	Name        string  `gorm:"not null;size:150"`
	Description string  `gorm:"size:1000"`
	Price       float64 `gorm:"not null"`
	Category    string  `gorm:"not null;size:100;index:idx_products_category"`
	ImageURL    string  `gorm:"size:500"`
	IsAvailable bool    `gorm:"not null;default:true"`
	Version     int     `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}

// BeforeCreate hook for GORM
func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (p *ProductModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", p.Version+1)
	return nil
}
