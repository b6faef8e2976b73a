package usecases

import (
	"context"
	"fmt"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/subscription"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type CreateProductCommand struct {
	HotelID     uint
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
}

// CreateProductUseCase adds a menu item, enforcing the plan's product cap.
// Hotels without a usable subscription fall back to the free tier limit.
type CreateProductUseCase struct {
	productRepo      catalog.ProductRepository
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewCreateProductUseCase(
	productRepo catalog.ProductRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:      productRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
	if cmd.HotelID == 0 {
		return nil, apperrors.NewValidationError("hotel ID is required")
	}

	limit, err := uc.productLimit(ctx, cmd.HotelID)
	if err != nil {
		return nil, err
	}

	count, err := uc.productRepo.CountByHotelID(ctx, cmd.HotelID)
	if err != nil {
		return nil, err
	}
	if count >= int64(limit) {
		return nil, apperrors.NewForbiddenError(
			fmt.Sprintf("product limit of %d reached, upgrade your plan to add more", limit))
	}

	p, err := catalog.NewProduct(cmd.HotelID, cmd.Name, cmd.Description, cmd.Price, cmd.Category)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.ImageURL != "" {
		p.SetImageURL(cmd.ImageURL)
	}

	if err := uc.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Infow("product created",
		"hotel_id", cmd.HotelID,
		"product_id", p.ID(),
		"name", p.Name())

	return p, nil
}

func (uc *CreateProductUseCase) productLimit(ctx context.Context, hotelID uint) (int, error) {
	sub, err := uc.subscriptionRepo.GetCurrentByHotelID(ctx, hotelID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return subscription.FreeTierMaxProducts, nil
		}
		return 0, err
	}
	if !sub.IsUsable() {
		return subscription.FreeTierMaxProducts, nil
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return subscription.FreeTierMaxProducts, nil
		}
		return 0, err
	}
	return plan.MaxProducts(), nil
}
