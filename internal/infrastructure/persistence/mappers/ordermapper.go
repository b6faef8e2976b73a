package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"hoteltec/internal/domain/order"
	vo "hoteltec/internal/domain/order/valueobjects"
	"hoteltec/internal/infrastructure/persistence/models"
)

// OrderMapper converts between the order aggregate and its persistence
// model, serializing the item snapshots to a JSON column
type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToModel(o *order.Order) (*models.OrderModel, error) {
	itemsJSON, err := json.Marshal(o.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}

	return &models.OrderModel{
		ID:            o.ID(),
		OrderID:       o.OrderID(),
		HotelID:       o.HotelID(),
		OrderNumber:   o.OrderNumber(),
		RoomNumber:    o.RoomNumber(),
		GuestName:     o.GuestName(),
		PhoneNumber:   o.PhoneNumber(),
		GuestEmail:    o.GuestEmail(),
		Items:         datatypes.JSON(itemsJSON),
		Subtotal:      o.Subtotal(),
		Total:         o.Total(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod(),
		Notes:         o.Notes(),
		Version:       o.Version(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}, nil
}

func (m *OrderMapper) ToDomain(model *models.OrderModel) (*order.Order, error) {
	var items []order.Item
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items for order %d: %w", model.ID, err)
		}
	}

	o, err := order.ReconstructOrder(
		model.ID,
		model.OrderID,
		model.HotelID,
		model.OrderNumber,
		model.RoomNumber,
		model.GuestName,
		model.PhoneNumber,
		model.GuestEmail,
		items,
		model.Subtotal,
		model.Total,
		vo.OrderStatus(model.Status),
		model.PaymentMethod,
		model.Notes,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order %d: %w", model.ID, err)
	}
	return o, nil
}
