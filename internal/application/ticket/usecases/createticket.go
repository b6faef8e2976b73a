package usecases

import (
	"context"

	"hoteltec/internal/domain/ticket"
	vo "hoteltec/internal/domain/ticket/valueobjects"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/id"
	"hoteltec/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	HotelID     *uint
	Title       string
	Description string
	Priority    string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	if missing := uc.missingFields(cmd); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing)
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		priority = p
	}

	t, err := ticket.NewTicket(id.NewTicketNumber(), cmd.UserID, cmd.HotelID, cmd.Title, cmd.Description, priority)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket opened",
		"ticket_number", t.TicketNumber(),
		"user_id", cmd.UserID,
		"priority", priority)

	return t, nil
}

func (uc *CreateTicketUseCase) missingFields(cmd CreateTicketCommand) []string {
	var missing []string
	if cmd.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if cmd.Title == "" {
		missing = append(missing, "title")
	}
	if cmd.Description == "" {
		missing = append(missing, "description")
	}
	return missing
}
