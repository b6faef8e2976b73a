package usecases

import (
	"context"

	"hoteltec/internal/domain/order"
	apperrors "hoteltec/internal/shared/errors"
)

type GetOrderCommand struct {
	OrderID string
	HotelID uint
}

type GetOrderUseCase struct {
	orderRepo order.OrderRepository
}

func NewGetOrderUseCase(orderRepo order.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, cmd GetOrderCommand) (*order.Order, error) {
	o, err := uc.orderRepo.GetByOrderID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	// Tenant isolation: dashboard callers only see their own hotel's orders.
	if cmd.HotelID != 0 && o.HotelID() != cmd.HotelID {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	return o, nil
}
