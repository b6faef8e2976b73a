package usecases

import (
	"context"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

// UpdateProductCommand carries optional fields; nil pointers leave the
// column untouched.
type UpdateProductCommand struct {
	HotelID     uint
	ProductID   uint
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
	IsAvailable *bool
}

type UpdateProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*catalog.Product, error) {
	if cmd.HotelID == 0 || cmd.ProductID == 0 {
		return nil, apperrors.NewValidationError("hotel and product IDs are required")
	}
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, apperrors.NewValidationError("product name cannot be empty")
	}
	if cmd.Price != nil && *cmd.Price < 0 {
		return nil, apperrors.NewValidationError("product price cannot be negative")
	}

	update := db.NewPartialUpdate()
	if cmd.Name != nil {
		update.Set("name", *cmd.Name)
	}
	if cmd.Description != nil {
		update.Set("description", *cmd.Description)
	}
	if cmd.Price != nil {
		update.Set("price", *cmd.Price)
	}
	if cmd.Category != nil {
		update.Set("category", *cmd.Category)
	}
	if cmd.ImageURL != nil {
		update.Set("image_url", *cmd.ImageURL)
	}
	if cmd.IsAvailable != nil {
		update.Set("is_available", *cmd.IsAvailable)
	}

	if update.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	if err := uc.productRepo.UpdateFields(ctx, cmd.HotelID, cmd.ProductID, update); err != nil {
		return nil, err
	}

	uc.logger.Infow("product updated",
		"hotel_id", cmd.HotelID,
		"product_id", cmd.ProductID,
		"fields", update.Len())

	return uc.productRepo.GetByID(ctx, cmd.ProductID)
}
