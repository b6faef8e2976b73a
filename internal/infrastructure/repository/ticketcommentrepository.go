package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/ticket"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
)

type TicketCommentRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
}

func NewTicketCommentRepository(db *gorm.DB) *TicketCommentRepository {
	return &TicketCommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if c.ID() == 0 {
		return c.SetID(model.ID)
	}
	return nil
}

func (r *TicketCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.TicketCommentModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for ticket %d: %w", ticketID, err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *TicketCommentRepository) Delete(ctx context.Context, commentID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.TicketCommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment %d: %w", commentID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}
	return nil
}
