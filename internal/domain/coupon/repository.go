package coupon

import "context"

type CouponRepository interface {
	Save(ctx context.Context, coupon *Coupon) error
	Update(ctx context.Context, coupon *Coupon) error
	Delete(ctx context.Context, couponID uint) error
	GetByID(ctx context.Context, couponID uint) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context, page, pageSize int) ([]*Coupon, int64, error)
	// IncrementUsage bumps current_uses by one, guarded so the count never
	// passes max_uses. Returns false when the cap was already reached.
	IncrementUsage(ctx context.Context, couponID uint) (bool, error)
}

type UsageRepository interface {
	Save(ctx context.Context, usage *Usage) error
	GetByCouponID(ctx context.Context, couponID uint) ([]*Usage, error)
	CountByCouponAndUser(ctx context.Context, couponID, userID uint) (int64, error)
}
