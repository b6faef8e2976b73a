package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "hoteltec/internal/domain/ticket/valueobjects"
	"hoteltec/internal/shared/biztime"
)

// Ticket represents the support ticket aggregate root
type Ticket struct {
	id           uint
	ticketNumber string
	hotelID      *uint
	userID       uint
	title        string
	description  string
	status       vo.TicketStatus
	priority     vo.Priority
	resolvedAt   *time.Time
	closedAt     *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTicket creates a new open ticket
func NewTicket(ticketNumber string, userID uint, hotelID *uint, title, description string, priority vo.Priority) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if ticketNumber == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("ticket title is required")
	}
	if description == "" {
		return nil, fmt.Errorf("ticket description is required")
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}

	now := biztime.NowUTC()
	return &Ticket{
		ticketNumber: ticketNumber,
		hotelID:      hotelID,
		userID:       userID,
		title:        title,
		description:  description,
		status:       vo.StatusOpen,
		priority:     priority,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTicket reconstructs a ticket from persistence
func ReconstructTicket(
	id uint,
	ticketNumber string,
	hotelID *uint,
	userID uint,
	title, description string,
	status vo.TicketStatus,
	priority vo.Priority,
	resolvedAt, closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ticketNumber == "" {
		return nil, fmt.Errorf("ticket number is required")
	}

	return &Ticket{
		id:           id,
		ticketNumber: ticketNumber,
		hotelID:      hotelID,
		userID:       userID,
		title:        title,
		description:  description,
		status:       status,
		priority:     priority,
		resolvedAt:   resolvedAt,
		closedAt:     closedAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) TicketNumber() string     { return t.ticketNumber }
func (t *Ticket) HotelID() *uint           { return t.hotelID }
func (t *Ticket) UserID() uint             { return t.userID }
func (t *Ticket) Title() string            { return t.title }
func (t *Ticket) Description() string      { return t.description }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) Priority() vo.Priority    { return t.priority }
func (t *Ticket) ResolvedAt() *time.Time   { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time     { return t.closedAt }
func (t *Ticket) Version() int             { return t.version }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }

// SetID assigns the persistence identity after the first save
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// TransitionTo moves the ticket through its lifecycle
func (t *Ticket) TransitionTo(target vo.TicketStatus) error {
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition ticket from %s to %s", t.status, target)
	}

	now := biztime.NowUTC()
	switch target {
	case vo.StatusResolved:
		t.resolvedAt = &now
	case vo.StatusClosed:
		t.closedAt = &now
	case vo.StatusOpen:
		t.resolvedAt = nil
		t.closedAt = nil
	}

	t.status = target
	t.updatedAt = now
	return nil
}

// SetPriority changes the ticket priority
func (t *Ticket) SetPriority(priority vo.Priority) {
	t.priority = priority
	t.updatedAt = biztime.NowUTC()
}

// IsOpen reports whether the ticket still needs attention
func (t *Ticket) IsOpen() bool {
	return t.status == vo.StatusOpen || t.status == vo.StatusInProgress
}
