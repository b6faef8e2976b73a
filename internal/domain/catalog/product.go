package catalog

import (
	"fmt"
	"strings"
	"time"

	"hoteltec/internal/shared/biztime"
)

// Product represents one item on a hotel's in-room ordering menu
type Product struct {
	id          uint
	hotelID     uint
	name        string
	description string
	price       float64
	category    string
	imageURL    string
	isAvailable bool
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates a new catalog product for a hotel
func NewProduct(hotelID uint, name, description string, price float64, category string) (*Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if hotelID == 0 {
		return nil, fmt.Errorf("hotel ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}
	if category == "" {
		return nil, fmt.Errorf("product category is required")
	}

	now := biztime.NowUTC()
	return &Product{
		hotelID:     hotelID,
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
		category:    category,
		isAvailable: true,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct reconstructs a product from persistence
func ReconstructProduct(
	id, hotelID uint,
	name, description string,
	price float64,
	category, imageURL string,
	isAvailable bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if hotelID == 0 {
		return nil, fmt.Errorf("hotel ID is required")
	}

	return &Product{
		id:          id,
		hotelID:     hotelID,
		name:        name,
		description: description,
		price:       price,
		category:    category,
		imageURL:    imageURL,
		isAvailable: isAvailable,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Product) ID() uint             { return p.id }
func (p *Product) HotelID() uint        { return p.hotelID }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() float64       { return p.price }
func (p *Product) Category() string     { return p.category }
func (p *Product) ImageURL() string     { return p.imageURL }
func (p *Product) IsAvailable() bool    { return p.isAvailable }
func (p *Product) Version() int         { return p.version }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetID assigns the persistence identity after the first save
func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateDetails applies edits to the product
func (p *Product) UpdateDetails(name, description string, price float64, category, imageURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("product name is required")
	}
	if price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}

	p.name = name
	p.description = strings.TrimSpace(description)
	p.price = price
	if category = strings.TrimSpace(category); category != "" {
		p.category = category
	}
	p.imageURL = strings.TrimSpace(imageURL)
	p.updatedAt = biztime.NowUTC()
	return nil
}

// SetAvailability toggles whether guests can order the product
func (p *Product) SetAvailability(available bool) {
	p.isAvailable = available
	p.updatedAt = biztime.NowUTC()
}

// SetImageURL updates the product image
func (p *Product) SetImageURL(url string) {
	p.imageURL = strings.TrimSpace(url)
	p.updatedAt = biztime.NowUTC()
}
