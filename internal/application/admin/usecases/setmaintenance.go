package usecases

import (
	"context"

	"hoteltec/internal/domain/hotel"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type SetMaintenanceCommand struct {
	HotelID uint
	Enabled bool
}

// SetMaintenanceUseCase toggles a hotel's maintenance mode. While enabled
// the storefront renders but ordering is off.
type SetMaintenanceUseCase struct {
	hotelRepo hotel.HotelRepository
	logger    logger.Interface
}

func NewSetMaintenanceUseCase(hotelRepo hotel.HotelRepository, logger logger.Interface) *SetMaintenanceUseCase {
	return &SetMaintenanceUseCase{hotelRepo: hotelRepo, logger: logger}
}

func (uc *SetMaintenanceUseCase) Execute(ctx context.Context, cmd SetMaintenanceCommand) (*hotel.Hotel, error) {
	if cmd.HotelID == 0 {
		return nil, apperrors.NewValidationError("hotel ID is required")
	}

	h, err := uc.hotelRepo.GetByID(ctx, cmd.HotelID)
	if err != nil {
		return nil, err
	}

	if h.MaintenanceMode() == cmd.Enabled {
		return h, nil
	}

	h.SetMaintenanceMode(cmd.Enabled)
	if err := uc.hotelRepo.Update(ctx, h); err != nil {
		return nil, err
	}

	uc.logger.Infow("maintenance mode changed",
		"hotel_id", cmd.HotelID,
		"enabled", cmd.Enabled)

	return h, nil
}
