package models

import (
	"time"

	"hoteltec/internal/shared/constants"
)

// TicketAttachmentModel represents a file attached to a support ticket
type TicketAttachmentModel struct {
	ID        uint   `gorm:"primarykey"`
	TicketID  uint   `gorm:"not null;index:idx_ticket_attachments_ticket_id"`
	CommentID *uint  `gorm:"index:idx_ticket_attachments_comment_id"`
	FileName  string `gorm:"not null;size:255"`
	FileURL   string `gorm:"not null;size:500"`
	FileSize  int64  `gorm:"not null;default:0"`
	MimeType  string `gorm:"size:100"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (TicketAttachmentModel) TableName() string {
	return constants.TableTicketAttachments
}
