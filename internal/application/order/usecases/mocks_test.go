package usecases

import (
	"context"
	"time"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/order"
	"hoteltec/internal/domain/user"
	"hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
)

type mockOrderRepository struct {
	SaveFunc            func(ctx context.Context, o *order.Order) error
	UpdateFunc          func(ctx context.Context, o *order.Order) error
	GetByIDFunc         func(ctx context.Context, id uint) (*order.Order, error)
	GetByOrderIDFunc    func(ctx context.Context, orderID string) (*order.Order, error)
	GetByHotelIDFunc    func(ctx context.Context, hotelID uint, filter order.OrderFilter) ([]*order.Order, int64, error)
	CountByHotelIDFunc  func(ctx context.Context, hotelID uint) (int64, error)
	SumTotalsFunc       func(ctx context.Context, hotelID *uint, from, to *time.Time) (float64, error)
	CountSinceFunc      func(ctx context.Context, hotelID *uint, since time.Time) (int64, error)
	DeleteByHotelIDFunc func(ctx context.Context, hotelID uint) error
}

func (m *mockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, apperrors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) GetByHotelID(ctx context.Context, hotelID uint, filter order.OrderFilter) ([]*order.Order, int64, error) {
	if m.GetByHotelIDFunc != nil {
		return m.GetByHotelIDFunc(ctx, hotelID, filter)
	}
	return nil, 0, nil
}

func (m *mockOrderRepository) CountByHotelID(ctx context.Context, hotelID uint) (int64, error) {
	if m.CountByHotelIDFunc != nil {
		return m.CountByHotelIDFunc(ctx, hotelID)
	}
	return 0, nil
}

func (m *mockOrderRepository) SumTotals(ctx context.Context, hotelID *uint, from, to *time.Time) (float64, error) {
	if m.SumTotalsFunc != nil {
		return m.SumTotalsFunc(ctx, hotelID, from, to)
	}
	return 0, nil
}

func (m *mockOrderRepository) CountSince(ctx context.Context, hotelID *uint, since time.Time) (int64, error) {
	if m.CountSinceFunc != nil {
		return m.CountSinceFunc(ctx, hotelID, since)
	}
	return 0, nil
}

func (m *mockOrderRepository) CountBetween(ctx context.Context, hotelID *uint, from, to *time.Time) (int64, error) {
	return 0, nil
}

func (m *mockOrderRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	if m.DeleteByHotelIDFunc != nil {
		return m.DeleteByHotelIDFunc(ctx, hotelID)
	}
	return nil
}

type mockProductRepository struct {
	GetByIDsFunc func(ctx context.Context, hotelID uint, productIDs []uint) ([]*catalog.Product, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *catalog.Product) error      { return nil }
func (m *mockProductRepository) SaveBatch(ctx context.Context, p []*catalog.Product) error { return nil }
func (m *mockProductRepository) Update(ctx context.Context, p *catalog.Product) error    { return nil }
func (m *mockProductRepository) UpdateFields(ctx context.Context, hotelID, productID uint, update *db.PartialUpdate) error {
	return nil
}
func (m *mockProductRepository) Delete(ctx context.Context, productID uint) error { return nil }
func (m *mockProductRepository) GetByID(ctx context.Context, productID uint) (*catalog.Product, error) {
	return nil, apperrors.NewNotFoundError("product not found")
}
func (m *mockProductRepository) GetByHotelID(ctx context.Context, hotelID uint, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	return nil, 0, nil
}
func (m *mockProductRepository) GetByIDs(ctx context.Context, hotelID uint, productIDs []uint) ([]*catalog.Product, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, hotelID, productIDs)
	}
	return nil, nil
}
func (m *mockProductRepository) CountByHotelID(ctx context.Context, hotelID uint) (int64, error) {
	return 0, nil
}
func (m *mockProductRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error { return nil }

type mockHotelRepository struct {
	GetByIDFunc func(ctx context.Context, hotelID uint) (*hotel.Hotel, error)
}

func (m *mockHotelRepository) Save(ctx context.Context, h *hotel.Hotel) error   { return nil }
func (m *mockHotelRepository) Update(ctx context.Context, h *hotel.Hotel) error { return nil }
func (m *mockHotelRepository) Delete(ctx context.Context, hotelID uint) error   { return nil }
func (m *mockHotelRepository) GetByID(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, hotelID)
	}
	return nil, apperrors.NewNotFoundError("hotel not found")
}
func (m *mockHotelRepository) GetBySlug(ctx context.Context, slug string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}
func (m *mockHotelRepository) GetBySlugPrefix(ctx context.Context, prefix string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}
func (m *mockHotelRepository) GetByName(ctx context.Context, name string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}
func (m *mockHotelRepository) SearchByName(ctx context.Context, fragment string) (*hotel.Hotel, error) {
	return nil, apperrors.NewNotFoundError("hotel not found")
}
func (m *mockHotelRepository) List(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, int64, error) {
	return nil, 0, nil
}
func (m *mockHotelRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockCounterRepository struct {
	NextOrderNumberFunc func(ctx context.Context, hotelID uint) (int64, error)
}

func (m *mockCounterRepository) NextOrderNumber(ctx context.Context, hotelID uint) (int64, error) {
	if m.NextOrderNumberFunc != nil {
		return m.NextOrderNumberFunc(ctx, hotelID)
	}
	return 1, nil
}

type mockUserRepository struct {
	GetByHotelIDFunc func(ctx context.Context, hotelID uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error  { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return nil, apperrors.NewNotFoundError("user not found")
}
func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, apperrors.NewNotFoundError("user not found")
}
func (m *mockUserRepository) GetByHotelID(ctx context.Context, hotelID uint) ([]*user.User, error) {
	if m.GetByHotelIDFunc != nil {
		return m.GetByHotelIDFunc(ctx, hotelID)
	}
	return nil, nil
}
func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}
func (m *mockUserRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error { return nil }

type mockNotificationRepository struct {
	SaveBatchFunc func(ctx context.Context, ns []*notification.Notification) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return nil
}
func (m *mockNotificationRepository) SaveBatch(ctx context.Context, ns []*notification.Notification) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, ns)
	}
	return nil
}
func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return nil
}
func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, apperrors.NewNotFoundError("notification not found")
}
func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}
func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (m *mockNotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}
func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}

type mockReceiptSender struct {
	SendOrderReceiptFunc func(to, hotelName, orderNumber string, total float64) error
}

func (m *mockReceiptSender) SendOrderReceipt(to, hotelName, orderNumber string, total float64) error {
	if m.SendOrderReceiptFunc != nil {
		return m.SendOrderReceiptFunc(to, hotelName, orderNumber, total)
	}
	return nil
}

type mockTxRunner struct{}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
