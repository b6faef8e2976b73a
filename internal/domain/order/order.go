package order

import (
	"fmt"
	"strings"
	"time"

	vo "hoteltec/internal/domain/order/valueobjects"
	"hoteltec/internal/shared/biztime"
)

// Order represents the guest order aggregate root. OrderID is the public
// short identifier; OrderNumber is the human-facing per-hotel sequence
// printed on kitchen slips.
type Order struct {
	id            uint
	orderID       string
	hotelID       uint
	orderNumber   int64
	roomNumber    string
	guestName     string
	phoneNumber   string
	guestEmail    string
	items         []Item
	subtotal      float64
	total         float64
	status        vo.OrderStatus
	paymentMethod string
	notes         string
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewOrder creates a new pending order. The totals are computed from the item
// snapshots; callers pass the per-hotel order number claimed from the counter.
func NewOrder(orderID string, hotelID uint, orderNumber int64, roomNumber, guestName, phoneNumber string, items []Item) (*Order, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	guestName = strings.TrimSpace(guestName)
	phoneNumber = strings.TrimSpace(phoneNumber)

	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if hotelID == 0 {
		return nil, fmt.Errorf("hotel ID is required")
	}
	if orderNumber <= 0 {
		return nil, fmt.Errorf("order number must be positive")
	}
	if roomNumber == "" {
		return nil, fmt.Errorf("room number is required")
	}
	if guestName == "" {
		return nil, fmt.Errorf("guest name is required")
	}
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	now := biztime.NowUTC()
	return &Order{
		orderID:     orderID,
		hotelID:     hotelID,
		orderNumber: orderNumber,
		roomNumber:  roomNumber,
		guestName:   guestName,
		phoneNumber: phoneNumber,
		items:       items,
		subtotal:    subtotal,
		total:       subtotal,
		status:      vo.StatusPending,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructOrder reconstructs an order from persistence
func ReconstructOrder(
	id uint,
	orderID string,
	hotelID uint,
	orderNumber int64,
	roomNumber, guestName, phoneNumber, guestEmail string,
	items []Item,
	subtotal, total float64,
	status vo.OrderStatus,
	paymentMethod, notes string,
	version int,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	return &Order{
		id:            id,
		orderID:       orderID,
		hotelID:       hotelID,
		orderNumber:   orderNumber,
		roomNumber:    roomNumber,
		guestName:     guestName,
		phoneNumber:   phoneNumber,
		guestEmail:    guestEmail,
		items:         items,
		subtotal:      subtotal,
		total:         total,
		status:        status,
		paymentMethod: paymentMethod,
		notes:         notes,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (o *Order) ID() uint               { return o.id }
func (o *Order) OrderID() string        { return o.orderID }
func (o *Order) HotelID() uint          { return o.hotelID }
func (o *Order) OrderNumber() int64     { return o.orderNumber }
func (o *Order) RoomNumber() string     { return o.roomNumber }
func (o *Order) GuestName() string      { return o.guestName }
func (o *Order) PhoneNumber() string    { return o.phoneNumber }
func (o *Order) GuestEmail() string     { return o.guestEmail }
func (o *Order) Subtotal() float64      { return o.subtotal }
func (o *Order) Total() float64         { return o.total }
func (o *Order) Status() vo.OrderStatus { return o.status }
func (o *Order) PaymentMethod() string  { return o.paymentMethod }
func (o *Order) Notes() string          { return o.notes }
func (o *Order) Version() int           { return o.version }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }

// Items returns a copy of the order line items
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// SetID assigns the persistence identity after the first save
func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// SetGuestEmail records an optional contact address for the receipt
func (o *Order) SetGuestEmail(email string) {
	o.guestEmail = strings.ToLower(strings.TrimSpace(email))
	o.updatedAt = biztime.NowUTC()
}

// SetPaymentMethod records how the guest intends to pay
func (o *Order) SetPaymentMethod(method string) {
	o.paymentMethod = strings.TrimSpace(method)
	o.updatedAt = biztime.NowUTC()
}

// SetNotes records guest instructions for the kitchen
func (o *Order) SetNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
	o.updatedAt = biztime.NowUTC()
}

// TransitionTo moves the order to a new status, enforcing the lifecycle
// pending -> preparing -> delivered, with cancellation allowed before
// delivery.
func (o *Order) TransitionTo(target vo.OrderStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid order status: %s", target)
	}
	if !o.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition order from %s to %s", o.status, target)
	}
	o.status = target
	o.updatedAt = biztime.NowUTC()
	return nil
}

// ItemCount returns the total quantity across all line items
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.Quantity
	}
	return count
}
