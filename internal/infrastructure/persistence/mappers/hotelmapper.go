package mappers

import (
	"fmt"

	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/infrastructure/persistence/models"
)

// HotelMapper converts between the hotel domain aggregate and its
// persistence model
type HotelMapper struct{}

func NewHotelMapper() *HotelMapper {
	return &HotelMapper{}
}

func (m *HotelMapper) ToModel(h *hotel.Hotel) *models.HotelModel {
	return &models.HotelModel{
		ID:              h.ID(),
		Name:            h.Name(),
		Slug:            h.Slug(),
		OwnerID:         h.OwnerID(),
		ContactEmail:    h.ContactEmail(),
		ContactPhone:    h.ContactPhone(),
		Address:         h.Address(),
		LogoURL:         h.LogoURL(),
		Status:          string(h.Status()),
		MaintenanceMode: h.MaintenanceMode(),
		CatalogSeeded:   h.CatalogSeeded(),
		Version:         h.Version(),
		CreatedAt:       h.CreatedAt(),
		UpdatedAt:       h.UpdatedAt(),
	}
}

func (m *HotelMapper) ToDomain(model *models.HotelModel) (*hotel.Hotel, error) {
	h, err := hotel.ReconstructHotel(
		model.ID,
		model.Name,
		model.Slug,
		model.OwnerID,
		model.ContactEmail,
		model.ContactPhone,
		model.Address,
		model.LogoURL,
		hotel.Status(model.Status),
		model.MaintenanceMode,
		model.CatalogSeeded,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct hotel %d: %w", model.ID, err)
	}
	return h, nil
}
