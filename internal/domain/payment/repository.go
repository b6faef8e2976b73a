package payment

import "context"

type PaymentRepository interface {
	Save(ctx context.Context, intent *Intent) error
	Update(ctx context.Context, intent *Intent) error
	GetByID(ctx context.Context, id uint) (*Intent, error)
	GetByIntentID(ctx context.Context, intentID string) (*Intent, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*Intent, error)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Intent, int64, error)
}
