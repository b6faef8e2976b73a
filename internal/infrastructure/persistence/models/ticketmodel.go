package models

import (
	"time"

	"gorm.io/gorm"

	"hoteltec/internal/shared/constants"
)

// TicketModel represents the database persistence model for support tickets
type TicketModel struct {
	ID           uint   `gorm:"primarykey"`
	TicketNumber string `gorm:"uniqueIndex;not null;size:32"`
	HotelID      *uint  `gorm:"index:idx_tickets_hotel_id"`
	UserID       uint   `gorm:"not null;index:idx_tickets_user_id"`
	Title        string `gorm:"not null;size:200"`
	Description  string `gorm:"not null;type:text"`
	Status       string `gorm:"not null;default:open;size:20;index:idx_tickets_status"`
	Priority     string `gorm:"not null;default:medium;size:20"`
	ResolvedAt   *time.Time
	ClosedAt     *time.Time
	Version      int `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// BeforeCreate hook for GORM
func (t *TicketModel) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = "open"
	}
	if t.Priority == "" {
		t.Priority = "medium"
	}
	if t.Version == 0 {
		t.Version = 1
	}
	return nil
}

// BeforeUpdate hook for GORM
func (t *TicketModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", t.Version+1)
	return nil
}
