package usecases

import (
	"context"
	"fmt"

	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/order"
	vo "hoteltec/internal/domain/order/valueobjects"
	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/goroutine"
	"hoteltec/internal/shared/logger"
)

type UpdateOrderStatusCommand struct {
	OrderID string
	HotelID uint
	Status  string
}

type UpdateOrderStatusUseCase struct {
	orderRepo order.OrderRepository
	userRepo  user.UserRepository
	notifRepo notification.NotificationRepository
	logger    logger.Interface
}

func NewUpdateOrderStatusUseCase(
	orderRepo order.OrderRepository,
	userRepo user.UserRepository,
	notifRepo notification.NotificationRepository,
	logger logger.Interface,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		logger:    logger,
	}
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	target, err := vo.NewOrderStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	o, err := uc.orderRepo.GetByOrderID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if cmd.HotelID != 0 && o.HotelID() != cmd.HotelID {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	if err := o.TransitionTo(target); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Infow("order status updated",
		"order_id", o.OrderID(),
		"hotel_id", o.HotelID(),
		"status", o.Status().String())

	uc.notifyStaff(o)

	return o, nil
}

func (uc *UpdateOrderStatusUseCase) notifyStaff(o *order.Order) {
	goroutine.SafeGo(uc.logger, "order.status.notify", func() {
		ctx := context.Background()
		staff, err := uc.userRepo.GetByHotelID(ctx, o.HotelID())
		if err != nil {
			uc.logger.Warnw("failed to load staff for status notification", "error", err, "hotel_id", o.HotelID())
			return
		}

		hotelID := o.HotelID()
		notifications := make([]*notification.Notification, 0, len(staff))
		for _, member := range staff {
			n, err := notification.NewNotification(
				member.ID(),
				&hotelID,
				notification.TypeOrderStatusChanged,
				fmt.Sprintf("Order #%d is %s", o.OrderNumber(), o.Status()),
				fmt.Sprintf("Room %s order moved to %s.", o.RoomNumber(), o.Status()),
			)
			if err != nil {
				continue
			}
			n.SetData("order_id", o.OrderID())
			notifications = append(notifications, n)
		}

		if err := uc.notifRepo.SaveBatch(ctx, notifications); err != nil {
			uc.logger.Warnw("failed to save status notifications", "error", err, "hotel_id", hotelID)
		}
	})
}
