package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"hoteltec/internal/domain/payment"
	"hoteltec/internal/infrastructure/persistence/models"
)

// PaymentMapper converts between the payment intent aggregate and its
// persistence model
type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToModel(p *payment.Intent) (*models.PaymentModel, error) {
	metadataJSON, err := json.Marshal(p.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment metadata: %w", err)
	}

	return &models.PaymentModel{
		ID:             p.ID(),
		IntentID:       p.IntentID(),
		ClientSecret:   p.ClientSecret(),
		UserID:         p.UserID(),
		HotelID:        p.HotelID(),
		SubscriptionID: p.SubscriptionID(),
		Amount:         p.Amount(),
		Currency:       p.Currency(),
		Status:         string(p.Status()),
		TransactionID:  p.TransactionID(),
		Metadata:       datatypes.JSON(metadataJSON),
		ExpiresAt:      p.ExpiresAt(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}, nil
}

func (m *PaymentMapper) ToDomain(model *models.PaymentModel) (*payment.Intent, error) {
	var metadata map[string]string
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata for payment %d: %w", model.ID, err)
		}
	}

	p, err := payment.ReconstructIntent(
		model.ID,
		model.IntentID,
		model.ClientSecret,
		model.UserID,
		model.HotelID,
		model.SubscriptionID,
		model.Amount,
		model.Currency,
		payment.Status(model.Status),
		model.TransactionID,
		metadata,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct payment %d: %w", model.ID, err)
	}
	return p, nil
}
