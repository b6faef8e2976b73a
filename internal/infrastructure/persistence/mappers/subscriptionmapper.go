package mappers

import (
	"fmt"

	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/infrastructure/persistence/models"
)

// SubscriptionMapper converts between the subscription aggregate and its
// persistence model
type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:            s.ID(),
		HotelID:       s.HotelID(),
		UserID:        s.UserID(),
		PlanID:        s.PlanID(),
		Status:        s.Status().String(),
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		AmountPaid:    s.AmountPaid(),
		CouponID:      s.CouponID(),
		TransactionID: s.TransactionID(),
		CancelledAt:   s.CancelledAt(),
		Version:       s.Version(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func (m *SubscriptionMapper) ToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	s, err := subscription.ReconstructSubscription(
		model.ID,
		model.HotelID,
		model.UserID,
		model.PlanID,
		vo.SubscriptionStatus(model.Status),
		model.StartDate,
		model.EndDate,
		model.AmountPaid,
		model.CouponID,
		model.TransactionID,
		model.CancelledAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription %d: %w", model.ID, err)
	}
	return s, nil
}
