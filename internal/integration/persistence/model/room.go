// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// RoomModel represents the rooms table in the database.
type RoomModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	RoomNumber    string          `gorm:"type:varchar(20);not null"`
	RoomType      string          `gorm:"type:varchar(20);not null"`
	MonthlyRent   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	MaxOccupancy  int             `gorm:"not null;default:1"`
	CurrentGuests int             `gorm:"not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the RoomModel.
func (RoomModel) TableName() string {
	return "rooms"
}

// ToEntity converts a RoomModel to a domain Room entity.
func (m *RoomModel) ToEntity() *entity.Room {
	return &entity.Room{
		ID:            m.ID,
		PropertyID:    m.PropertyID,
		RoomNumber:    m.RoomNumber,
		RoomType:      entity.RoomType(m.RoomType),
		MonthlyRent:   m.MonthlyRent,
		Status:        entity.RoomStatus(m.Status),
		MaxOccupancy:  m.MaxOccupancy,
		CurrentGuests: m.CurrentGuests,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RoomFromEntity creates a RoomModel from a domain Room entity.
func RoomFromEntity(room *entity.Room) *RoomModel {
	return &RoomModel{
		ID:            room.ID,
		PropertyID:    room.PropertyID,
		RoomNumber:    room.RoomNumber,
		RoomType:      string(room.RoomType),
		MonthlyRent:   room.MonthlyRent,
		Status:        string(room.Status),
		MaxOccupancy:  room.MaxOccupancy,
		CurrentGuests: room.CurrentGuests,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}
