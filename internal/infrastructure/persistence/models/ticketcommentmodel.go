package models

import (
	"time"

	"hoteltec/internal/shared/constants"
)

// TicketCommentModel represents a reply on a support ticket. ContentHTML is
// the sanitized render of the markdown Content, produced at write time.
type TicketCommentModel struct {
	ID          uint   `gorm:"primarykey"`
	TicketID    uint   `gorm:"not null;index:idx_ticket_comments_ticket_id"`
	UserID      *uint  `gorm:"index:idx_ticket_comments_user_id"`
	Content     string `gorm:"not null;type:text"`
	ContentHTML string `gorm:"type:text"`
	IsAdmin     bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TicketCommentModel) TableName() string {
	return constants.TableTicketComments
}
