package usecases

import (
	"context"

	"hoteltec/internal/domain/order"
	vo "hoteltec/internal/domain/order/valueobjects"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type ListOrdersCommand struct {
	HotelID    uint
	Status     string
	RoomNumber string
	Page       int
	PageSize   int
}

type ListOrdersResult struct {
	Orders []*order.Order
	Total  int64
}

type ListOrdersUseCase struct {
	orderRepo order.OrderRepository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.OrderRepository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, cmd ListOrdersCommand) (*ListOrdersResult, error) {
	if cmd.HotelID == 0 {
		return nil, apperrors.NewValidationError("hotel ID is required")
	}

	filter := order.OrderFilter{
		RoomNumber: cmd.RoomNumber,
		Page:       cmd.Page,
		PageSize:   cmd.PageSize,
	}

	if cmd.Status != "" {
		status, err := vo.NewOrderStatus(cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	orders, total, err := uc.orderRepo.GetByHotelID(ctx, cmd.HotelID, filter)
	if err != nil {
		return nil, err
	}

	return &ListOrdersResult{Orders: orders, Total: total}, nil
}
