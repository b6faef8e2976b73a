package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/order"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

func placedOrder(t *testing.T, hotelID uint) *order.Order {
	t.Helper()
	item, err := order.NewItem(10, "Burger", 12.50, 1)
	require.NoError(t, err)
	o, err := order.NewOrder("ord_test123", hotelID, 5, "204", "Ada", "+15550100", []order.Item{item})
	require.NoError(t, err)
	require.NoError(t, o.SetID(1))
	return o
}

func TestUpdateOrderStatusUseCase_ValidTransition(t *testing.T) {
	o := placedOrder(t, 1)

	var updated *order.Order
	orderRepo := &mockOrderRepository{
		GetByOrderIDFunc: func(ctx context.Context, orderID string) (*order.Order, error) { return o, nil },
		UpdateFunc: func(ctx context.Context, ord *order.Order) error {
			updated = ord
			return nil
		},
	}

	uc := NewUpdateOrderStatusUseCase(orderRepo, &mockUserRepository{}, &mockNotificationRepository{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateOrderStatusCommand{
		OrderID: "ord_test123",
		HotelID: 1,
		Status:  "preparing",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "preparing", result.Status().String())
}

func TestUpdateOrderStatusUseCase_InvalidTransition(t *testing.T) {
	o := placedOrder(t, 1)

	orderRepo := &mockOrderRepository{
		GetByOrderIDFunc: func(ctx context.Context, orderID string) (*order.Order, error) { return o, nil },
	}

	uc := NewUpdateOrderStatusUseCase(orderRepo, &mockUserRepository{}, &mockNotificationRepository{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateOrderStatusCommand{
		OrderID: "ord_test123",
		HotelID: 1,
		Status:  "delivered",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUpdateOrderStatusUseCase_UnknownStatus(t *testing.T) {
	uc := NewUpdateOrderStatusUseCase(&mockOrderRepository{}, &mockUserRepository{}, &mockNotificationRepository{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateOrderStatusCommand{
		OrderID: "ord_test123",
		Status:  "shipped",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestUpdateOrderStatusUseCase_TenantIsolation(t *testing.T) {
	o := placedOrder(t, 2)

	orderRepo := &mockOrderRepository{
		GetByOrderIDFunc: func(ctx context.Context, orderID string) (*order.Order, error) { return o, nil },
	}

	uc := NewUpdateOrderStatusUseCase(orderRepo, &mockUserRepository{}, &mockNotificationRepository{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), UpdateOrderStatusCommand{
		OrderID: "ord_test123",
		HotelID: 1,
		Status:  "preparing",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
