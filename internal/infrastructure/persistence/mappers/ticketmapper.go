package mappers

import (
	"fmt"

	"hoteltec/internal/domain/ticket"
	vo "hoteltec/internal/domain/ticket/valueobjects"
	"hoteltec/internal/infrastructure/persistence/models"
)

// TicketMapper converts between the ticket aggregate and its persistence
// model
type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		TicketNumber: t.TicketNumber(),
		HotelID:      t.HotelID(),
		UserID:       t.UserID(),
		Title:        t.Title(),
		Description:  t.Description(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		ResolvedAt:   t.ResolvedAt(),
		ClosedAt:     t.ClosedAt(),
		Version:      t.Version(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.TicketNumber,
		model.HotelID,
		model.UserID,
		model.Title,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.ResolvedAt,
		model.ClosedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapper) CommentToModel(c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		UserID:      c.UserID(),
		Content:     c.Content(),
		ContentHTML: c.ContentHTML(),
		IsAdmin:     c.IsAdmin(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func (m *TicketMapper) CommentToDomain(model *models.TicketCommentModel) (*ticket.Comment, error) {
	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		model.ContentHTML,
		model.IsAdmin,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment %d: %w", model.ID, err)
	}
	return c, nil
}
