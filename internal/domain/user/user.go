package user

import (
	"fmt"
	"strings"
	"time"

	"hoteltec/internal/shared/biztime"
)

type Role string

const (
	RoleHotelOwner Role = "hotel_owner"
	RoleStaff      Role = "staff"
)

var validRoles = map[Role]bool{
	RoleHotelOwner: true,
	RoleStaff:      true,
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// User represents the user aggregate root
type User struct {
	id           uint
	email        string
	name         string
	passwordHash string
	role         Role
	hotelID      *uint
	// currentSubscriptionID mirrors the hotel's active subscription so auth
	// lookups skip a join; it moves at confirmation and cancellation.
	currentSubscriptionID *uint
	status                Status
	lastLoginAt           *time.Time
	version               int
	createdAt             time.Time
	updatedAt             time.Time
}

// NewUser creates a new user with a pre-hashed password
func NewUser(email, name, passwordHash string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email format: %s", email)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusActive,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	email, name, passwordHash string,
	role Role,
	hotelID *uint,
	currentSubscriptionID *uint,
	status Status,
	lastLoginAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                    id,
		email:                 email,
		name:                  name,
		passwordHash:          passwordHash,
		role:                  role,
		hotelID:               hotelID,
		currentSubscriptionID: currentSubscriptionID,
		status:                status,
		lastLoginAt:           lastLoginAt,
		version:               version,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

func (u *User) ID() uint                { return u.id }
func (u *User) Email() string           { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) HotelID() *uint          { return u.hotelID }

func (u *User) CurrentSubscriptionID() *uint { return u.currentSubscriptionID }
func (u *User) Status() Status          { return u.status }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) Version() int            { return u.version }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

// SetID assigns the persistence identity after the first save
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// AssignHotel links the user to the hotel they own or work for
func (u *User) AssignHotel(hotelID uint) error {
	if hotelID == 0 {
		return fmt.Errorf("hotel ID cannot be zero")
	}
	u.hotelID = &hotelID
	u.updatedAt = biztime.NowUTC()
	return nil
}

// SetCurrentSubscription points the mirror at the active subscription;
// pass nil when it ends.
func (u *User) SetCurrentSubscription(subscriptionID *uint) {
	u.currentSubscriptionID = subscriptionID
	u.updatedAt = biztime.NowUTC()
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// Suspend blocks the user from signing in
func (u *User) Suspend() {
	u.status = StatusSuspended
	u.updatedAt = biztime.NowUTC()
}

// Reactivate lifts a suspension
func (u *User) Reactivate() {
	u.status = StatusActive
	u.updatedAt = biztime.NowUTC()
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) IsOwner() bool {
	return u.role == RoleHotelOwner
}
