package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"hoteltec/internal/domain/notification"
	"hoteltec/internal/infrastructure/persistence/models"
)

// NotificationMapper converts between the notification aggregate and its
// persistence model
type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	dataJSON, err := json.Marshal(n.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification data: %w", err)
	}

	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		HotelID:   n.HotelID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      datatypes.JSON(dataJSON),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}, nil
}

func (m *NotificationMapper) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	var data map[string]string
	if len(model.Data) > 0 {
		if err := json.Unmarshal(model.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data for notification %d: %w", model.ID, err)
		}
	}

	n, err := notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.HotelID,
		notification.Type(model.Type),
		model.Title,
		model.Message,
		data,
		model.IsRead,
		model.ReadAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification %d: %w", model.ID, err)
	}
	return n, nil
}
