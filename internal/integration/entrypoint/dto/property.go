// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// CreatePropertyRequest represents the request body for property creation.
type CreatePropertyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// UpdatePropertyRequest represents the request body for property update.
type UpdatePropertyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// SelectPropertyRequest represents the request body for switching the
// active property.
type SelectPropertyRequest struct {
	PropertyID string `json:"property_id" binding:"required,uuid"`
}

// AssignManagerRequest represents the request body for manager assignment.
type AssignManagerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PropertyResponse represents a single property in API responses.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PropertyListResponse represents the response for listing properties.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// SelectedPropertyResponse represents the resolved active property. Property
// is null when the user has no accessible properties.
type SelectedPropertyResponse struct {
	Property *PropertyResponse `json:"property"`
}

// ManagerResponse represents a manager assignment in API responses.
type ManagerResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	ManagerID  string    `json:"manager_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AssignedAt time.Time `json:"assigned_at"`
}

// ManagerListResponse represents the response for listing managers.
type ManagerListResponse struct {
	Managers []ManagerResponse `json:"managers"`
}

// ToPropertyResponse converts a domain Property entity to a PropertyResponse DTO.
func ToPropertyResponse(property *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:        property.ID.String(),
		Name:      property.Name,
		Address:   property.Address,
		OwnerID:   property.OwnerID.String(),
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}

// ToManagerResponse converts a ManagerWithUser to a ManagerResponse DTO.
func ToManagerResponse(manager *entity.ManagerWithUser) ManagerResponse {
	response := ManagerResponse{
		ID:         manager.Assignment.ID.String(),
		PropertyID: manager.Assignment.PropertyID.String(),
		ManagerID:  manager.Assignment.ManagerID.String(),
		AssignedAt: manager.Assignment.CreatedAt,
	}
	if manager.User != nil {
		response.Name = manager.User.Name
		response.Email = manager.User.Email
	}
	return response
}
