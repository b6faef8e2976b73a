package usecases

import (
	"context"

	"hoteltec/internal/domain/subscription"
)

type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
}

func NewListPlansUseCase(planRepo subscription.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo}
}

// Execute returns the purchasable plans in display order.
func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*subscription.Plan, error) {
	return uc.planRepo.ListActive(ctx)
}
