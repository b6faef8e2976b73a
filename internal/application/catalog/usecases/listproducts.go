package usecases

import (
	"context"

	"hoteltec/internal/domain/catalog"
	apperrors "hoteltec/internal/shared/errors"
)

type ListProductsCommand struct {
	HotelID       uint
	Category      string
	AvailableOnly bool
	Search        string
	Page          int
	PageSize      int
}

type ListProductsResult struct {
	Products []*catalog.Product
	Total    int64
}

type ListProductsUseCase struct {
	productRepo catalog.ProductRepository
}

func NewListProductsUseCase(productRepo catalog.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, cmd ListProductsCommand) (*ListProductsResult, error) {
	if cmd.HotelID == 0 {
		return nil, apperrors.NewValidationError("hotel ID is required")
	}

	filter := catalog.ProductFilter{
		Category:      cmd.Category,
		AvailableOnly: cmd.AvailableOnly,
		Search:        cmd.Search,
		Page:          cmd.Page,
		PageSize:      cmd.PageSize,
	}

	products, total, err := uc.productRepo.GetByHotelID(ctx, cmd.HotelID, filter)
	if err != nil {
		return nil, err
	}
	return &ListProductsResult{Products: products, Total: total}, nil
}
