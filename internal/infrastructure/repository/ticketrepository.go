package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/ticket"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if t.ID() == 0 {
		return t.SetID(model.ID)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket %d: %w", t.ID(), err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket %d: %w", ticketID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("ticket_number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket %q: %w", number, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(db.WithContext(ctx).Model(&models.TicketModel{}), filter)

	return r.page(query, filter)
}

func (r *TicketRepository) GetUserTickets(ctx context.Context, userID uint, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(db.WithContext(ctx).Model(&models.TicketModel{}), filter).
		Where("user_id = ?", userID)

	return r.page(query, filter)
}

func (r *TicketRepository) CountOpen(ctx context.Context) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("status IN ?", []string{"open", "in_progress"}).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count open tickets: %w", err)
	}
	return total, nil
}

func (r *TicketRepository) applyFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.HotelID != nil {
		query = query.Where("hotel_id = ?", *filter.HotelID)
	}
	return query
}

func (r *TicketRepository) page(query *gorm.DB, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}
	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit()).Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}
