// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GuestStatus represents the lifecycle status of a guest.
type GuestStatus string

const (
	GuestStatusActive   GuestStatus = "active"
	GuestStatusMovedOut GuestStatus = "moved_out"
	GuestStatusInactive GuestStatus = "inactive"
)

// PaymentStatus represents the denormalized per-current-period payment flag.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// Guest represents a resident of a property. A guest always belongs to
// exactly one property and optionally one room. MonthlyRent may differ from
// the room's listed rent.
type Guest struct {
	ID            uuid.UUID
	UserID        *uuid.UUID // portal login, if the guest has an account
	PropertyID    uuid.UUID
	RoomID        *uuid.UUID
	BedNumber     string
	FullName      string
	Phone         string
	JoiningDate   time.Time
	MonthlyRent   decimal.Decimal
	PaymentStatus PaymentStatus
	Status        GuestStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGuest creates a new active Guest entity with a pending payment status.
func NewGuest(propertyID uuid.UUID, roomID *uuid.UUID, fullName, phone, bedNumber string, joiningDate time.Time, monthlyRent decimal.Decimal) *Guest {
	now := time.Now().UTC()
	return &Guest{
		ID:            uuid.New(),
		PropertyID:    propertyID,
		RoomID:        roomID,
		BedNumber:     bedNumber,
		FullName:      fullName,
		Phone:         phone,
		JoiningDate:   joiningDate,
		MonthlyRent:   monthlyRent,
		PaymentStatus: PaymentStatusPending,
		Status:        GuestStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// GuestWithRoom pairs a guest with their room, when assigned.
type GuestWithRoom struct {
	Guest *Guest
	Room  *Room
}
