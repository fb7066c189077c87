// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a single managed building/site owned by one operator.
// It is the scoping unit for rooms, guests, payments and expenses.
type Property struct {
	ID        uuid.UUID
	Name      string
	Address   string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProperty creates a new Property entity.
func NewProperty(ownerID uuid.UUID, name, address string) *Property {
	now := time.Now().UTC()
	return &Property{
		ID:        uuid.New(),
		Name:      name,
		Address:   address,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PropertyManager links a user to a property with the manager role.
// A property can have many managers and a manager can serve many properties.
type PropertyManager struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	ManagerID  uuid.UUID
	CreatedAt  time.Time
}

// NewPropertyManager creates a new manager assignment.
func NewPropertyManager(propertyID, managerID uuid.UUID) *PropertyManager {
	return &PropertyManager{
		ID:         uuid.New(),
		PropertyID: propertyID,
		ManagerID:  managerID,
		CreatedAt:  time.Now().UTC(),
	}
}

// ManagerWithUser pairs a manager assignment with the resolved user record.
type ManagerWithUser struct {
	Assignment *PropertyManager
	User       *User
}
