package usecases

import (
	"context"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/order"
	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/domain/user"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

// DeleteHotelUseCase removes a hotel and everything attached to it. The
// whole cascade commits or rolls back together.
type DeleteHotelUseCase struct {
	hotelRepo        hotel.HotelRepository
	userRepo         user.UserRepository
	productRepo      catalog.ProductRepository
	orderRepo        order.OrderRepository
	subscriptionRepo subscription.SubscriptionRepository
	txManager        appDB.TxRunner
	logger           logger.Interface
}

func NewDeleteHotelUseCase(
	hotelRepo hotel.HotelRepository,
	userRepo user.UserRepository,
	productRepo catalog.ProductRepository,
	orderRepo order.OrderRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	txManager appDB.TxRunner,
	logger logger.Interface,
) *DeleteHotelUseCase {
	return &DeleteHotelUseCase{
		hotelRepo:        hotelRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *DeleteHotelUseCase) Execute(ctx context.Context, hotelID uint) error {
	if hotelID == 0 {
		return apperrors.NewValidationError("hotel ID is required")
	}

	h, err := uc.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.DeleteByHotelID(txCtx, hotelID); err != nil {
			return err
		}
		if err := uc.productRepo.DeleteByHotelID(txCtx, hotelID); err != nil {
			return err
		}
		if err := uc.subscriptionRepo.DeleteByHotelID(txCtx, hotelID); err != nil {
			return err
		}
		if err := uc.userRepo.DeleteByHotelID(txCtx, hotelID); err != nil {
			return err
		}
		return uc.hotelRepo.Delete(txCtx, hotelID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("hotel deleted", "hotel_id", hotelID, "slug", h.Slug())
	return nil
}
