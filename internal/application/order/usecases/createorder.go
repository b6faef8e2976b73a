package usecases

import (
	"context"
	"fmt"
	"math"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/order"
	"hoteltec/internal/domain/user"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/goroutine"
	"hoteltec/internal/shared/id"
	"hoteltec/internal/shared/logger"
)

type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

type CreateOrderCommand struct {
	HotelID       uint
	RoomNumber    string
	GuestName     string
	PhoneNumber   string
	GuestEmail    string
	PaymentMethod string
	Notes         string
	TotalAmount   float64
	Items         []OrderItemInput
}

type CreateOrderResult struct {
	Order *order.Order
}

// ReceiptSender mails the guest an order confirmation.
type ReceiptSender interface {
	SendOrderReceipt(to, hotelName, orderNumber string, total float64) error
}

// CreateOrderUseCase places a guest order. The per-hotel order number is
// claimed and the order row written in one transaction; the receipt email
// and staff notifications run after commit and never fail the order.
type CreateOrderUseCase struct {
	orderRepo   order.OrderRepository
	productRepo catalog.ProductRepository
	hotelRepo   hotel.HotelRepository
	counterRepo hotel.CounterRepository
	userRepo    user.UserRepository
	notifRepo   notification.NotificationRepository
	receipts    ReceiptSender
	txManager   appDB.TxRunner
	logger      logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.OrderRepository,
	productRepo catalog.ProductRepository,
	hotelRepo hotel.HotelRepository,
	counterRepo hotel.CounterRepository,
	userRepo user.UserRepository,
	notifRepo notification.NotificationRepository,
	receipts ReceiptSender,
	txManager appDB.TxRunner,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		hotelRepo:   hotelRepo,
		counterRepo: counterRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
		receipts:    receipts,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if missing := uc.missingFields(cmd); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing)
	}

	h, err := uc.hotelRepo.GetByID(ctx, cmd.HotelID)
	if err != nil {
		return nil, err
	}
	if !h.IsActive() {
		return nil, apperrors.NewForbiddenError("hotel is not accepting orders")
	}
	if h.MaintenanceMode() {
		return nil, apperrors.NewNotProvisionedError("ordering")
	}

	items, err := uc.buildItems(ctx, cmd)
	if err != nil {
		return nil, err
	}

	// The client-submitted total is checked against the server-side price
	// snapshot; stale menus or tampered payloads reject the order.
	var expected float64
	for _, item := range items {
		expected += item.LineTotal()
	}
	if math.Abs(expected-cmd.TotalAmount) > 0.01 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("total_amount %.2f does not match the order items (expected %.2f)", cmd.TotalAmount, expected))
	}

	var placed *order.Order
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.counterRepo.NextOrderNumber(txCtx, cmd.HotelID)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(id.NewOrderID(), cmd.HotelID, number, cmd.RoomNumber, cmd.GuestName, cmd.PhoneNumber, items)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if cmd.GuestEmail != "" {
			o.SetGuestEmail(cmd.GuestEmail)
		}
		if cmd.PaymentMethod != "" {
			o.SetPaymentMethod(cmd.PaymentMethod)
		}
		if cmd.Notes != "" {
			o.SetNotes(cmd.Notes)
		}

		if err := uc.orderRepo.Save(txCtx, o); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("order placed",
		"order_id", placed.OrderID(),
		"hotel_id", placed.HotelID(),
		"order_number", placed.OrderNumber(),
		"total", placed.Total())

	uc.dispatchSideEffects(h, placed)

	return &CreateOrderResult{Order: placed}, nil
}

func (uc *CreateOrderUseCase) missingFields(cmd CreateOrderCommand) []string {
	var missing []string
	if cmd.HotelID == 0 {
		missing = append(missing, "hotel_id")
	}
	if cmd.RoomNumber == "" {
		missing = append(missing, "room_number")
	}
	if cmd.GuestName == "" {
		missing = append(missing, "guest_name")
	}
	if cmd.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if len(cmd.Items) == 0 {
		missing = append(missing, "items")
	}
	if cmd.TotalAmount == 0 {
		missing = append(missing, "total_amount")
	}
	return missing
}

// buildItems snapshots catalog products into order line items. Unknown or
// unavailable products reject the whole order.
func (uc *CreateOrderUseCase) buildItems(ctx context.Context, cmd CreateOrderCommand) ([]order.Item, error) {
	ids := make([]uint, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		if item.ProductID == 0 {
			return nil, apperrors.NewValidationError("item product_id is required")
		}
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidationError("item quantity must be positive")
		}
		ids = append(ids, item.ProductID)
	}

	products, err := uc.productRepo.GetByIDs(ctx, cmd.HotelID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	items := make([]order.Item, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		p, ok := byID[input.ProductID]
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("product %d not found in this hotel's menu", input.ProductID))
		}
		if !p.IsAvailable() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("product %q is currently unavailable", p.Name()))
		}

		item, err := order.NewItem(p.ID(), p.Name(), p.Price(), input.Quantity)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		items = append(items, item)
	}
	return items, nil
}

// dispatchSideEffects runs best-effort post-commit work: the guest receipt
// and staff notifications. Failures are logged, never surfaced.
func (uc *CreateOrderUseCase) dispatchSideEffects(h *hotel.Hotel, o *order.Order) {
	orderNumber := fmt.Sprintf("#%d", o.OrderNumber())

	if o.GuestEmail() != "" && uc.receipts != nil {
		email := o.GuestEmail()
		total := o.Total()
		goroutine.SafeGo(uc.logger, "order.receipt", func() {
			if err := uc.receipts.SendOrderReceipt(email, h.Name(), orderNumber, total); err != nil {
				uc.logger.Warnw("failed to send order receipt", "error", err, "order_id", o.OrderID())
			}
		})
	}

	goroutine.SafeGo(uc.logger, "order.notify", func() {
		ctx := context.Background()
		staff, err := uc.userRepo.GetByHotelID(ctx, h.ID())
		if err != nil {
			uc.logger.Warnw("failed to load staff for order notification", "error", err, "hotel_id", h.ID())
			return
		}

		hotelID := h.ID()
		notifications := make([]*notification.Notification, 0, len(staff))
		for _, member := range staff {
			n, err := notification.NewNotification(
				member.ID(),
				&hotelID,
				notification.TypeOrderPlaced,
				fmt.Sprintf("New order %s", orderNumber),
				fmt.Sprintf("Room %s ordered %d items (%.2f).", o.RoomNumber(), o.ItemCount(), o.Total()),
			)
			if err != nil {
				continue
			}
			n.SetData("order_id", o.OrderID())
			notifications = append(notifications, n)
		}

		if err := uc.notifRepo.SaveBatch(ctx, notifications); err != nil {
			uc.logger.Warnw("failed to save order notifications", "error", err, "hotel_id", h.ID())
		}
	})
}
