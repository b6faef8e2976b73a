package usecases

import (
	"context"
	"time"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/coupon"
	"hoteltec/internal/domain/notification"
	"hoteltec/internal/domain/payment"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/domain/user"
	"hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
)

type mockSubscriptionRepository struct {
	SaveFunc                func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc              func(ctx context.Context, sub *subscription.Subscription) error
	GetByIDFunc             func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetCurrentByHotelIDFunc func(ctx context.Context, hotelID uint) (*subscription.Subscription, error)
	GetByTransactionIDFunc  func(ctx context.Context, transactionID string) (*subscription.Subscription, error)
	ListFunc                func(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error)
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return sub.SetID(1)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) GetCurrentByHotelID(ctx context.Context, hotelID uint) (*subscription.Subscription, error) {
	if m.GetCurrentByHotelIDFunc != nil {
		return m.GetCurrentByHotelIDFunc(ctx, hotelID)
	}
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*subscription.Subscription, error) {
	if m.GetByTransactionIDFunc != nil {
		return m.GetByTransactionIDFunc(ctx, transactionID)
	}
	return nil, apperrors.NewNotFoundError("subscription not found")
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error) {
	return 0, nil
}

func (m *mockSubscriptionRepository) SumAmountPaid(ctx context.Context, statuses []vo.SubscriptionStatus) (float64, error) {
	return 0, nil
}

func (m *mockSubscriptionRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	return nil
}

type mockPlanRepository struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*subscription.Plan, error)
	ListActiveFunc func(ctx context.Context) ([]*subscription.Plan, error)
}

func (m *mockPlanRepository) Save(ctx context.Context, plan *subscription.Plan) error   { return nil }
func (m *mockPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error { return nil }
func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("plan not found")
}
func (m *mockPlanRepository) GetByName(ctx context.Context, name string) (*subscription.Plan, error) {
	return nil, apperrors.NewNotFoundError("plan not found")
}
func (m *mockPlanRepository) ListActive(ctx context.Context) ([]*subscription.Plan, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}
func (m *mockPlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	return nil, nil
}
func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockCouponRepository struct {
	GetByCodeFunc      func(ctx context.Context, code string) (*coupon.Coupon, error)
	IncrementUsageFunc func(ctx context.Context, couponID uint) (bool, error)
}

func (m *mockCouponRepository) Save(ctx context.Context, c *coupon.Coupon) error   { return nil }
func (m *mockCouponRepository) Update(ctx context.Context, c *coupon.Coupon) error { return nil }
func (m *mockCouponRepository) Delete(ctx context.Context, couponID uint) error    { return nil }
func (m *mockCouponRepository) GetByID(ctx context.Context, couponID uint) (*coupon.Coupon, error) {
	return nil, apperrors.NewNotFoundError("coupon not found")
}
func (m *mockCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, apperrors.NewNotFoundError("coupon not found")
}
func (m *mockCouponRepository) List(ctx context.Context, page, pageSize int) ([]*coupon.Coupon, int64, error) {
	return nil, 0, nil
}
func (m *mockCouponRepository) IncrementUsage(ctx context.Context, couponID uint) (bool, error) {
	if m.IncrementUsageFunc != nil {
		return m.IncrementUsageFunc(ctx, couponID)
	}
	return true, nil
}

type mockUsageRepository struct {
	SaveFunc func(ctx context.Context, usage *coupon.Usage) error
}

func (m *mockUsageRepository) Save(ctx context.Context, usage *coupon.Usage) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, usage)
	}
	return nil
}
func (m *mockUsageRepository) GetByCouponID(ctx context.Context, couponID uint) ([]*coupon.Usage, error) {
	return nil, nil
}
func (m *mockUsageRepository) CountByCouponAndUser(ctx context.Context, couponID, userID uint) (int64, error) {
	return 0, nil
}

type mockPaymentRepository struct {
	SaveFunc          func(ctx context.Context, intent *payment.Intent) error
	UpdateFunc        func(ctx context.Context, intent *payment.Intent) error
	GetByIntentIDFunc func(ctx context.Context, intentID string) (*payment.Intent, error)
}

func (m *mockPaymentRepository) Save(ctx context.Context, intent *payment.Intent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, intent)
	}
	return intent.SetID(1)
}
func (m *mockPaymentRepository) Update(ctx context.Context, intent *payment.Intent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, intent)
	}
	return nil
}
func (m *mockPaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Intent, error) {
	return nil, apperrors.NewNotFoundError("payment not found")
}
func (m *mockPaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*payment.Intent, error) {
	if m.GetByIntentIDFunc != nil {
		return m.GetByIntentIDFunc(ctx, intentID)
	}
	return nil, apperrors.NewNotFoundError("payment not found")
}
func (m *mockPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Intent, error) {
	return nil, apperrors.NewNotFoundError("payment not found")
}
func (m *mockPaymentRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*payment.Intent, int64, error) {
	return nil, 0, nil
}

type mockNotificationRepository struct {
	SaveFunc func(ctx context.Context, n *notification.Notification) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}
func (m *mockNotificationRepository) SaveBatch(ctx context.Context, ns []*notification.Notification) error {
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
func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (m *mockNotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

type mockProductRepository struct {
	CountByHotelIDFunc func(ctx context.Context, hotelID uint) (int64, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *catalog.Product) error        { return nil }
func (m *mockProductRepository) SaveBatch(ctx context.Context, ps []*catalog.Product) error { return nil }
func (m *mockProductRepository) Update(ctx context.Context, p *catalog.Product) error      { return nil }
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
	return nil, nil
}
func (m *mockProductRepository) CountByHotelID(ctx context.Context, hotelID uint) (int64, error) {
	if m.CountByHotelIDFunc != nil {
		return m.CountByHotelIDFunc(ctx, hotelID)
	}
	return 0, nil
}
func (m *mockProductRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error { return nil }

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
	UpdateFunc  func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	u, err := user.NewUser("owner@example.com", "Owner", "hash", user.RoleHotelOwner)
	if err != nil {
		return nil, err
	}
	if err := u.SetID(userID); err != nil {
		return nil, err
	}
	return u, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByHotelID(ctx context.Context, hotelID uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error { return nil }

type mockTxRunner struct{}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
