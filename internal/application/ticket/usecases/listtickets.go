package usecases

import (
	"context"

	"hoteltec/internal/domain/ticket"
	vo "hoteltec/internal/domain/ticket/valueobjects"
	apperrors "hoteltec/internal/shared/errors"
)

type ListTicketsCommand struct {
	// UserID scopes the list to one user's tickets; zero lists across all
	// users for operators.
	UserID   uint
	HotelID  *uint
	Status   string
	Priority string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets []*ticket.Ticket
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		HotelID:  cmd.HotelID,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Status != "" {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if cmd.Priority != "" {
		priority, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	var (
		tickets []*ticket.Ticket
		total   int64
		err     error
	)
	if cmd.UserID != 0 {
		tickets, total, err = uc.ticketRepo.GetUserTickets(ctx, cmd.UserID, filter)
	} else {
		tickets, total, err = uc.ticketRepo.List(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{Tickets: tickets, Total: total}, nil
}
