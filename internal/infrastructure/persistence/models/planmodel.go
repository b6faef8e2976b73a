package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans
type PlanModel struct {
	ID            uint           `gorm:"primarykey"`
	Name          string         `gorm:"uniqueIndex;not null;size:100"`
	DisplayName   string         `gorm:"not null;size:150"`
	Price         float64        `gorm:"not null"`
	BillingMonths int            `gorm:"not null;default:1"`
	MaxProducts   int            `gorm:"not null;default:5"`
	Features      datatypes.JSON `gorm:"type:json"`
	IsActive      bool           `gorm:"not null;default:true"`
	SortOrder     int            `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
