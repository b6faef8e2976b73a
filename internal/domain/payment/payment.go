package payment

import (
	"fmt"
	"time"

	"hoteltec/internal/shared/biztime"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusSucceeded: true,
	StatusFailed:    true,
	StatusCancelled: true,
}

// Intent represents a payment intent: the provider-side handle a client uses
// to complete a charge. IntentID and ClientSecret are generated locally; no
// real provider call happens.
type Intent struct {
	id             uint
	intentID       string
	clientSecret   string
	userID         uint
	hotelID        *uint
	subscriptionID *uint
	amount         float64
	currency       string
	status         Status
	transactionID  *string
	metadata       map[string]string
	expiresAt      time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewIntent creates a pending payment intent that expires after ttlMinutes.
func NewIntent(intentID, clientSecret string, userID uint, amount float64, currency string, ttlMinutes int) (*Intent, error) {
	if intentID == "" {
		return nil, fmt.Errorf("intent ID is required")
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("client secret is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	if currency == "" {
		currency = "usd"
	}
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}

	now := biztime.NowUTC()
	return &Intent{
		intentID:     intentID,
		clientSecret: clientSecret,
		userID:       userID,
		amount:       amount,
		currency:     currency,
		status:       StatusPending,
		metadata:     make(map[string]string),
		expiresAt:    now.Add(time.Duration(ttlMinutes) * time.Minute),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructIntent reconstructs a payment intent from persistence
func ReconstructIntent(
	id uint,
	intentID, clientSecret string,
	userID uint,
	hotelID, subscriptionID *uint,
	amount float64,
	currency string,
	status Status,
	transactionID *string,
	metadata map[string]string,
	expiresAt, createdAt, updatedAt time.Time,
) (*Intent, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid payment status: %s", status)
	}
	if metadata == nil {
		metadata = make(map[string]string)
	}

	return &Intent{
		id:             id,
		intentID:       intentID,
		clientSecret:   clientSecret,
		userID:         userID,
		hotelID:        hotelID,
		subscriptionID: subscriptionID,
		amount:         amount,
		currency:       currency,
		status:         status,
		transactionID:  transactionID,
		metadata:       metadata,
		expiresAt:      expiresAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Intent) ID() uint                { return p.id }
func (p *Intent) IntentID() string        { return p.intentID }
func (p *Intent) ClientSecret() string    { return p.clientSecret }
func (p *Intent) UserID() uint            { return p.userID }
func (p *Intent) HotelID() *uint          { return p.hotelID }
func (p *Intent) SubscriptionID() *uint   { return p.subscriptionID }
func (p *Intent) Amount() float64         { return p.amount }
func (p *Intent) Currency() string        { return p.currency }
func (p *Intent) Status() Status          { return p.status }
func (p *Intent) TransactionID() *string  { return p.transactionID }
func (p *Intent) ExpiresAt() time.Time    { return p.expiresAt }
func (p *Intent) CreatedAt() time.Time    { return p.createdAt }
func (p *Intent) UpdatedAt() time.Time    { return p.updatedAt }

// Metadata returns a copy of the intent metadata
func (p *Intent) Metadata() map[string]string {
	m := make(map[string]string, len(p.metadata))
	for k, v := range p.metadata {
		m[k] = v
	}
	return m
}

// SetID assigns the persistence identity after the first save
func (p *Intent) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = id
	return nil
}

// LinkHotel associates the intent with a hotel tenant
func (p *Intent) LinkHotel(hotelID uint) {
	p.hotelID = &hotelID
	p.updatedAt = biztime.NowUTC()
}

// LinkSubscription associates the intent with the subscription it pays for
func (p *Intent) LinkSubscription(subscriptionID uint) {
	p.subscriptionID = &subscriptionID
	p.updatedAt = biztime.NowUTC()
}

// SetMetadata stores a metadata entry on the intent
func (p *Intent) SetMetadata(key, value string) {
	p.metadata[key] = value
	p.updatedAt = biztime.NowUTC()
}

// Succeed marks the intent as paid with the provider transaction ID
func (p *Intent) Succeed(transactionID string) error {
	if p.status != StatusPending {
		return fmt.Errorf("cannot succeed payment in status %s", p.status)
	}
	if transactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	p.status = StatusSucceeded
	p.transactionID = &transactionID
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Fail marks the intent as failed
func (p *Intent) Fail() error {
	if p.status != StatusPending {
		return fmt.Errorf("cannot fail payment in status %s", p.status)
	}
	p.status = StatusFailed
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Cancel voids a pending intent
func (p *Intent) Cancel() error {
	if p.status != StatusPending {
		return fmt.Errorf("cannot cancel payment in status %s", p.status)
	}
	p.status = StatusCancelled
	p.updatedAt = biztime.NowUTC()
	return nil
}

// IsExpired reports whether the intent passed its expiry without succeeding
func (p *Intent) IsExpired() bool {
	return p.status == StatusPending && p.expiresAt.Before(biztime.NowUTC())
}
