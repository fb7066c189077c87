// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaintenancePriority represents the urgency of a maintenance request.
type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
)

// MaintenanceStatus represents the processing state of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
)

// MaintenanceRequest represents a guest-submitted maintenance issue.
type MaintenanceRequest struct {
	ID          uuid.UUID
	GuestID     uuid.UUID
	PropertyID  uuid.UUID
	RoomID      *uuid.UUID
	Title       string
	Description string
	Priority    MaintenancePriority
	Status      MaintenanceStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMaintenanceRequest creates a new pending MaintenanceRequest entity.
func NewMaintenanceRequest(guestID, propertyID uuid.UUID, roomID *uuid.UUID, title, description string, priority MaintenancePriority) *MaintenanceRequest {
	now := time.Now().UTC()
	return &MaintenanceRequest{
		ID:          uuid.New(),
		GuestID:     guestID,
		PropertyID:  propertyID,
		RoomID:      roomID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      MaintenanceStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
