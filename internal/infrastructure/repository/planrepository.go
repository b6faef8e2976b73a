package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
)

type PlanRepository struct {
	db     *gorm.DB
	mapper *mappers.PlanMapper
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{
		db:     db,
		mapper: mappers.NewPlanMapper(),
	}
}

func (r *PlanRepository) Save(ctx context.Context, p *subscription.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("plan name already exists")
		}
		return fmt.Errorf("failed to save plan: %w", err)
	}

	if p.ID() == 0 {
		return p.SetID(model.ID)
	}
	return nil
}

func (r *PlanRepository) Update(ctx context.Context, p *subscription.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update plan %d: %w", p.ID(), err)
	}
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to get plan %d: %w", id, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PlanRepository) GetByName(ctx context.Context, name string) (*subscription.Plan, error) {
	var model models.PlanModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to get plan %q: %w", name, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []models.PlanModel

	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&planModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}

	return r.toDomainList(planModels)
}

func (r *PlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []models.PlanModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Order("sort_order ASC").Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.toDomainList(planModels)
}

func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.PlanModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	return total, nil
}

func (r *PlanRepository) toDomainList(planModels []models.PlanModel) ([]*subscription.Plan, error) {
	plans := make([]*subscription.Plan, 0, len(planModels))
	for i := range planModels {
		p, err := r.mapper.ToDomain(&planModels[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
