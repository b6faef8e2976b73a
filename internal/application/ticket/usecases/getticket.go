package usecases

import (
	"context"

	"hoteltec/internal/domain/ticket"
	apperrors "hoteltec/internal/shared/errors"
)

type GetTicketCommand struct {
	TicketID uint
	// UserID restricts access to the ticket owner; zero skips the check for
	// operators.
	UserID uint
}

type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Comments []*ticket.Comment
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, commentRepo ticket.CommentRepository) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, commentRepo: commentRepo}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if cmd.UserID != 0 && t.UserID() != cmd.UserID {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	return &GetTicketResult{Ticket: t, Comments: comments}, nil
}
