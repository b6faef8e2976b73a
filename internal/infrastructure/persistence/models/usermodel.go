package models

import (
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                    uint   `gorm:"primarykey"`
	Email                 string `gorm:"uniqueIndex;not null;size:255"`
	Name                  string `gorm:"not null;size:100"`
	PasswordHash          string `gorm:"not null;size:255"`
	Role                  string `gorm:"not null;default:hotel_owner;size:20"`
	HotelID               *uint  `gorm:"index:idx_users_hotel_id"`
	CurrentSubscriptionID *uint
	Status                string `gorm:"not null;default:active;size:20"`
	Version               int    `gorm:"not null;default:1"`
	LastLoginAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = "active"
	}
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (u *UserModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", u.Version+1)
	return nil
}
