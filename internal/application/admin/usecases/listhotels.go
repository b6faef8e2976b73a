package usecases

import (
	"context"

	"hoteltec/internal/domain/hotel"
	apperrors "hoteltec/internal/shared/errors"
)

type ListHotelsCommand struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListHotelsResult struct {
	Hotels []*hotel.Hotel
	Total  int64
}

type ListHotelsUseCase struct {
	hotelRepo hotel.HotelRepository
}

func NewListHotelsUseCase(hotelRepo hotel.HotelRepository) *ListHotelsUseCase {
	return &ListHotelsUseCase{hotelRepo: hotelRepo}
}

func (uc *ListHotelsUseCase) Execute(ctx context.Context, cmd ListHotelsCommand) (*ListHotelsResult, error) {
	filter := hotel.HotelFilter{
		Search:   cmd.Search,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Status != "" {
		status := hotel.Status(cmd.Status)
		if status != hotel.StatusActive && status != hotel.StatusInactive {
			return nil, apperrors.NewValidationError("invalid hotel status")
		}
		filter.Status = &status
	}

	hotels, total, err := uc.hotelRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListHotelsResult{Hotels: hotels, Total: total}, nil
}
