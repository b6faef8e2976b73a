package hotel

import (
	"fmt"
	"strings"
	"time"

	"hoteltec/internal/shared/biztime"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Hotel represents the hotel tenant aggregate root. Each hotel is an isolated
// tenant: its catalog, orders, and staff all hang off its ID, and guests reach
// its storefront through the slug.
type Hotel struct {
	id              uint
	name            string
	slug            string
	ownerID         *uint
	contactEmail    string
	contactPhone    string
	address         string
	logoURL         string
	status          Status
	maintenanceMode bool
	catalogSeeded   bool
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewHotel creates a new hotel tenant. The slug is derived from the name when
// not given explicitly.
func NewHotel(name, slug, contactEmail string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("hotel name is required")
	}

	if slug == "" {
		slug = Slugify(name)
	} else {
		slug = Slugify(slug)
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive a slug from hotel name %q", name)
	}

	now := biztime.NowUTC()
	return &Hotel{
		name:         name,
		slug:         slug,
		contactEmail: strings.ToLower(strings.TrimSpace(contactEmail)),
		status:       StatusActive,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructHotel reconstructs a hotel from persistence
func ReconstructHotel(
	id uint,
	name, slug string,
	ownerID *uint,
	contactEmail, contactPhone, address, logoURL string,
	status Status,
	maintenanceMode, catalogSeeded bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Hotel, error) {
	if id == 0 {
		return nil, fmt.Errorf("hotel ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("hotel name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("hotel slug is required")
	}

	return &Hotel{
		id:              id,
		name:            name,
		slug:            slug,
		ownerID:         ownerID,
		contactEmail:    contactEmail,
		contactPhone:    contactPhone,
		address:         address,
		logoURL:         logoURL,
		status:          status,
		maintenanceMode: maintenanceMode,
		catalogSeeded:   catalogSeeded,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (h *Hotel) ID() uint              { return h.id }
func (h *Hotel) Name() string          { return h.name }
func (h *Hotel) Slug() string          { return h.slug }
func (h *Hotel) OwnerID() *uint        { return h.ownerID }
func (h *Hotel) ContactEmail() string  { return h.contactEmail }
func (h *Hotel) ContactPhone() string  { return h.contactPhone }
func (h *Hotel) Address() string       { return h.address }
func (h *Hotel) LogoURL() string       { return h.logoURL }
func (h *Hotel) Status() Status        { return h.status }
func (h *Hotel) MaintenanceMode() bool { return h.maintenanceMode }
func (h *Hotel) CatalogSeeded() bool   { return h.catalogSeeded }
func (h *Hotel) Version() int          { return h.version }
func (h *Hotel) CreatedAt() time.Time  { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time  { return h.updatedAt }

// SetID assigns the persistence identity after the first save
func (h *Hotel) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("hotel ID already set")
	}
	if id == 0 {
		return fmt.Errorf("hotel ID cannot be zero")
	}
	h.id = id
	return nil
}

// AssignOwner links the hotel to its owning user
func (h *Hotel) AssignOwner(ownerID uint) error {
	if ownerID == 0 {
		return fmt.Errorf("owner ID cannot be zero")
	}
	h.ownerID = &ownerID
	h.updatedAt = biztime.NowUTC()
	return nil
}

// MarkCatalogSeeded records that the default catalog has been provisioned.
// Seeding happens at most once per hotel.
func (h *Hotel) MarkCatalogSeeded() {
	h.catalogSeeded = true
	h.updatedAt = biztime.NowUTC()
}

// UpdateProfile applies contact and branding changes
func (h *Hotel) UpdateProfile(contactEmail, contactPhone, address, logoURL string) {
	h.contactEmail = strings.ToLower(strings.TrimSpace(contactEmail))
	h.contactPhone = strings.TrimSpace(contactPhone)
	h.address = strings.TrimSpace(address)
	h.logoURL = strings.TrimSpace(logoURL)
	h.updatedAt = biztime.NowUTC()
}

// Rename changes the display name. The slug is deliberately left untouched so
// printed QR codes keep working.
func (h *Hotel) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("hotel name is required")
	}
	h.name = name
	h.updatedAt = biztime.NowUTC()
	return nil
}

// SetMaintenanceMode toggles the storefront maintenance flag
func (h *Hotel) SetMaintenanceMode(enabled bool) {
	h.maintenanceMode = enabled
	h.updatedAt = biztime.NowUTC()
}

// Deactivate takes the tenant offline
func (h *Hotel) Deactivate() {
	h.status = StatusInactive
	h.updatedAt = biztime.NowUTC()
}

// Activate brings the tenant back online
func (h *Hotel) Activate() {
	h.status = StatusActive
	h.updatedAt = biztime.NowUTC()
}

func (h *Hotel) IsActive() bool {
	return h.status == StatusActive
}
