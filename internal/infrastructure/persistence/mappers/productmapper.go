package mappers

import (
	"fmt"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/infrastructure/persistence/models"
)

// ProductMapper converts between the catalog product aggregate and its
// persistence model
type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToModel(p *catalog.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          p.ID(),
		HotelID:     p.HotelID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Category:    p.Category(),
		ImageURL:    p.ImageURL(),
		IsAvailable: p.IsAvailable(),
		Version:     p.Version(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func (m *ProductMapper) ToDomain(model *models.ProductModel) (*catalog.Product, error) {
	p, err := catalog.ReconstructProduct(
		model.ID,
		model.HotelID,
		model.Name,
		model.Description,
		model.Price,
		model.Category,
		model.ImageURL,
		model.IsAvailable,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product %d: %w", model.ID, err)
	}
	return p, nil
}
