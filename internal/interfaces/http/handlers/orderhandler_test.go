package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequest_NormalizeCamelCase(t *testing.T) {
	payload := `{
		"hotelId": 7,
		"roomNumber": "204",
		"guestName": "Ana",
		"phoneNumber": "+15550100",
		"guestEmail": "ana@example.com",
		"totalAmount": 25.00,
		"items": [{"productId": 3, "quantity": 2}]
	}`

	var req createOrderRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.normalize()

	assert.Equal(t, uint(7), req.HotelID)
	assert.Equal(t, "204", req.RoomNumber)
	assert.Equal(t, "Ana", req.GuestName)
	assert.Equal(t, "+15550100", req.PhoneNumber)
	assert.Equal(t, "ana@example.com", req.GuestEmail)
	assert.InDelta(t, 25.00, req.TotalAmount, 0.001)
	require.Len(t, req.Items, 1)
	assert.Equal(t, uint(3), req.Items[0].ProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)
}

func TestCreateOrderRequest_SnakeCaseWinsOverCamel(t *testing.T) {
	payload := `{
		"hotel_id": 1,
		"hotelId": 9,
		"room_number": "101",
		"roomNumber": "999",
		"phone_number": "+15550100",
		"phoneNumber": "+15559999",
		"total_amount": 10.00,
		"totalAmount": 99.00,
		"items": [{"product_id": 5, "productId": 8, "quantity": 1}]
	}`

	var req createOrderRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	req.normalize()

	assert.Equal(t, uint(1), req.HotelID)
	assert.Equal(t, "101", req.RoomNumber)
	assert.Equal(t, "+15550100", req.PhoneNumber)
	assert.InDelta(t, 10.00, req.TotalAmount, 0.001)
	assert.Equal(t, uint(5), req.Items[0].ProductID)
}
