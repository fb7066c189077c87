// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// PropertyModel represents the properties table in the database.
type PropertyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "properties"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() *entity.Property {
	return &entity.Property{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PropertyFromEntity creates a PropertyModel from a domain Property entity.
func PropertyFromEntity(property *entity.Property) *PropertyModel {
	return &PropertyModel{
		ID:        property.ID,
		Name:      property.Name,
		Address:   property.Address,
		OwnerID:   property.OwnerID,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}

// PropertyManagerModel represents the property_managers join table.
type PropertyManagerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index:idx_property_manager,unique"`
	ManagerID  uuid.UUID `gorm:"type:uuid;not null;index:idx_property_manager,unique"`
	CreatedAt  time.Time `gorm:"not null"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
	Manager  *UserModel     `gorm:"foreignKey:ManagerID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PropertyManagerModel.
func (PropertyManagerModel) TableName() string {
	return "property_managers"
}

// ToEntity converts a PropertyManagerModel to a domain PropertyManager entity.
func (m *PropertyManagerModel) ToEntity() *entity.PropertyManager {
	return &entity.PropertyManager{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		ManagerID:  m.ManagerID,
		CreatedAt:  m.CreatedAt,
	}
}

// ToEntityWithUser converts a PropertyManagerModel with its Manager to a
// ManagerWithUser entity.
func (m *PropertyManagerModel) ToEntityWithUser() *entity.ManagerWithUser {
	result := &entity.ManagerWithUser{
		Assignment: m.ToEntity(),
	}
	if m.Manager != nil {
		result.User = m.Manager.ToEntity()
	}
	return result
}

// PropertyManagerFromEntity creates a PropertyManagerModel from a domain entity.
func PropertyManagerFromEntity(assignment *entity.PropertyManager) *PropertyManagerModel {
	return &PropertyManagerModel{
		ID:         assignment.ID,
		PropertyID: assignment.PropertyID,
		ManagerID:  assignment.ManagerID,
		CreatedAt:  assignment.CreatedAt,
	}
}
