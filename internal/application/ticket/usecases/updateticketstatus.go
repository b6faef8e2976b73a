package usecases

import (
	"context"

	"hoteltec/internal/domain/ticket"
	vo "hoteltec/internal/domain/ticket/valueobjects"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	TicketID uint
	Status   string
	// UserID restricts the change to the ticket owner; zero skips the check
	// for operators.
	UserID uint
}

type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*ticket.Ticket, error) {
	target, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if cmd.UserID != 0 && t.UserID() != cmd.UserID {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := t.TransitionTo(target); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket status updated",
		"ticket_number", t.TicketNumber(),
		"status", t.Status())

	return t, nil
}
