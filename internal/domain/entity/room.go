// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomType represents the sharing category of a room.
type RoomType string

const (
	RoomTypeSingle  RoomType = "Single"
	RoomTypeDouble  RoomType = "Double"
	RoomTypeSharing RoomType = "Sharing"
)

// RoomStatus represents the stored occupancy status of a room.
// The field is denormalized: it is written only by the occupancy helpers
// and trusted everywhere it is read.
type RoomStatus string

const (
	RoomStatusVacant   RoomStatus = "vacant"
	RoomStatusOccupied RoomStatus = "occupied"
)

// Room represents a rentable room within a property.
type Room struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	RoomNumber    string
	RoomType      RoomType
	MonthlyRent   decimal.Decimal
	Status        RoomStatus
	MaxOccupancy  int
	CurrentGuests int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRoom creates a new vacant Room entity.
func NewRoom(propertyID uuid.UUID, roomNumber string, roomType RoomType, monthlyRent decimal.Decimal, maxOccupancy int) *Room {
	now := time.Now().UTC()
	return &Room{
		ID:            uuid.New(),
		PropertyID:    propertyID,
		RoomNumber:    roomNumber,
		RoomType:      roomType,
		MonthlyRent:   monthlyRent,
		Status:        RoomStatusVacant,
		MaxOccupancy:  maxOccupancy,
		CurrentGuests: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsFull reports whether the room has reached its maximum occupancy.
func (r *Room) IsFull() bool {
	return r.CurrentGuests >= r.MaxOccupancy
}

// RecomputeStatus derives the stored status from the occupancy counters.
// A room flips to occupied only at full capacity, not on the first guest.
func (r *Room) RecomputeStatus() {
	if r.CurrentGuests >= r.MaxOccupancy {
		r.Status = RoomStatusOccupied
	} else {
		r.Status = RoomStatusVacant
	}
}
