// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// MaintenanceRequestModel represents the maintenance_requests table.
type MaintenanceRequestModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GuestID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PropertyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	RoomID      *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Priority    string     `gorm:"type:varchar(10);not null"`
	Status      string     `gorm:"type:varchar(15);not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`

	Guest    *GuestModel    `gorm:"foreignKey:GuestID;references:ID;constraint:OnDelete:CASCADE"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the MaintenanceRequestModel.
func (MaintenanceRequestModel) TableName() string {
	return "maintenance_requests"
}

// ToEntity converts a MaintenanceRequestModel to a domain entity.
func (m *MaintenanceRequestModel) ToEntity() *entity.MaintenanceRequest {
	return &entity.MaintenanceRequest{
		ID:          m.ID,
		GuestID:     m.GuestID,
		PropertyID:  m.PropertyID,
		RoomID:      m.RoomID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    entity.MaintenancePriority(m.Priority),
		Status:      entity.MaintenanceStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MaintenanceRequestFromEntity creates a model from a domain entity.
func MaintenanceRequestFromEntity(request *entity.MaintenanceRequest) *MaintenanceRequestModel {
	return &MaintenanceRequestModel{
		ID:          request.ID,
		GuestID:     request.GuestID,
		PropertyID:  request.PropertyID,
		RoomID:      request.RoomID,
		Title:       request.Title,
		Description: request.Description,
		Priority:    string(request.Priority),
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
