package usecases

import (
	"context"

	"hoteltec/internal/domain/catalog"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type DeleteProductUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewDeleteProductUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, hotelID, productID uint) error {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p.HotelID() != hotelID {
		return apperrors.NewNotFoundError("product not found")
	}

	if err := uc.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	uc.logger.Infow("product deleted", "hotel_id", hotelID, "product_id", productID, "name", p.Name())
	return nil
}
