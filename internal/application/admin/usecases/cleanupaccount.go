package usecases

import (
	"context"

	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type CleanupAccountCommand struct {
	Email string
}

// CleanupAccountUseCase purges a user account by email. Accounts attached to
// a hotel take the whole hotel down with them via the delete-hotel cascade.
type CleanupAccountUseCase struct {
	userRepo    user.UserRepository
	deleteHotel *DeleteHotelUseCase
	logger      logger.Interface
}

func NewCleanupAccountUseCase(
	userRepo user.UserRepository,
	deleteHotel *DeleteHotelUseCase,
	logger logger.Interface,
) *CleanupAccountUseCase {
	return &CleanupAccountUseCase{
		userRepo:    userRepo,
		deleteHotel: deleteHotel,
		logger:      logger,
	}
}

func (uc *CleanupAccountUseCase) Execute(ctx context.Context, cmd CleanupAccountCommand) error {
	if cmd.Email == "" {
		return apperrors.NewValidationError("email is required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return err
	}

	if hotelID := u.HotelID(); hotelID != nil {
		if err := uc.deleteHotel.Execute(ctx, *hotelID); err != nil {
			return err
		}
		uc.logger.Infow("account cleaned up with hotel",
			"email", cmd.Email, "hotel_id", *hotelID)
		return nil
	}

	if err := uc.userRepo.Delete(ctx, u.ID()); err != nil {
		return err
	}

	uc.logger.Infow("account cleaned up", "email", cmd.Email, "user_id", u.ID())
	return nil
}
