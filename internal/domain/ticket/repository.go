package ticket

import (
	"context"

	vo "hoteltec/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	GetUserTickets(ctx context.Context, userID uint, filter TicketFilter) ([]*Ticket, int64, error)
	CountOpen(ctx context.Context) (int64, error)
}

type TicketFilter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	HotelID  *uint
	Page     int
	PageSize int
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}
