package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByHotelID(ctx context.Context, hotelID uint) ([]*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	DeleteByHotelID(ctx context.Context, hotelID uint) error
}

type UserFilter struct {
	Role     *Role
	Status   *Status
	Search   string
	Page     int
	PageSize int
}
