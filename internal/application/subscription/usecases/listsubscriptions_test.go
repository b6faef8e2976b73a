package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
)

func TestListSubscriptionsUseCase_ScopesToHotel(t *testing.T) {
	sub := trialSubscription(t, 7)

	var seen subscription.SubscriptionFilter
	subRepo := &mockSubscriptionRepository{
		ListFunc: func(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
			seen = filter
			return []*subscription.Subscription{sub}, 1, nil
		},
	}

	uc := NewListSubscriptionsUseCase(subRepo)
	result, err := uc.Execute(context.Background(), ListSubscriptionsCommand{
		HotelID:  7,
		Status:   "trial",
		Page:     2,
		PageSize: 10,
	})

	require.NoError(t, err)
	require.Len(t, result.Subscriptions, 1)
	assert.Equal(t, int64(1), result.Total)

	require.NotNil(t, seen.HotelID)
	assert.Equal(t, uint(7), *seen.HotelID)
	require.NotNil(t, seen.Status)
	assert.Equal(t, vo.StatusTrial, *seen.Status)
	assert.Equal(t, 2, seen.Page)
	assert.Equal(t, 10, seen.PageSize)
}

func TestListSubscriptionsUseCase_RejectsBadInput(t *testing.T) {
	uc := NewListSubscriptionsUseCase(&mockSubscriptionRepository{})

	_, err := uc.Execute(context.Background(), ListSubscriptionsCommand{Status: "trial"})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), ListSubscriptionsCommand{HotelID: 7, Status: "bogus"})
	assert.Error(t, err)
}
