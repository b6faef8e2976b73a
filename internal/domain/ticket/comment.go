package ticket

import (
	"fmt"
	"strings"
	"time"

	"hoteltec/internal/shared/biztime"
)

// Comment represents a reply on a ticket. ContentHTML is the sanitized
// render of the markdown content.
type Comment struct {
	id          uint
	ticketID    uint
	userID      *uint
	content     string
	contentHTML string
	isAdmin     bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewComment creates a ticket reply. A nil userID marks a reply from the
// platform operator.
func NewComment(ticketID uint, userID *uint, content, contentHTML string, isAdmin bool) (*Comment, error) {
	content = strings.TrimSpace(content)
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if content == "" {
		return nil, fmt.Errorf("comment content is required")
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:    ticketID,
		userID:      userID,
		content:     content,
		contentHTML: contentHTML,
		isAdmin:     isAdmin,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructComment reconstructs a comment from persistence
func ReconstructComment(id, ticketID uint, userID *uint, content, contentHTML string, isAdmin bool, createdAt, updatedAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		content:     content,
		contentHTML: contentHTML,
		isAdmin:     isAdmin,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() *uint        { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) ContentHTML() string  { return c.contentHTML }
func (c *Comment) IsAdmin() bool        { return c.isAdmin }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

// SetID assigns the persistence identity after the first save
func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
