package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/infrastructure/persistence/models"
)

// PlanMapper converts between the plan aggregate and its persistence model
type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToModel(p *subscription.Plan) (*models.PlanModel, error) {
	featuresJSON, err := json.Marshal(p.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan features: %w", err)
	}

	return &models.PlanModel{
		ID:            p.ID(),
		Name:          p.Name(),
		DisplayName:   p.DisplayName(),
		Price:         p.Price(),
		BillingMonths: p.BillingMonths(),
		MaxProducts:   p.MaxProducts(),
		Features:      datatypes.JSON(featuresJSON),
		IsActive:      p.IsActive(),
		SortOrder:     p.SortOrder(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}, nil
}

func (m *PlanMapper) ToDomain(model *models.PlanModel) (*subscription.Plan, error) {
	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features for plan %d: %w", model.ID, err)
		}
	}

	p, err := subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.DisplayName,
		model.Price,
		model.BillingMonths,
		model.MaxProducts,
		features,
		model.IsActive,
		model.SortOrder,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan %d: %w", model.ID, err)
	}
	return p, nil
}
