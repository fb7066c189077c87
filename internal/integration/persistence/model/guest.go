// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// GuestModel represents the guests table in the database.
type GuestModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        *uuid.UUID      `gorm:"type:uuid;index"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	RoomID        *uuid.UUID      `gorm:"type:uuid;index"`
	BedNumber     string          `gorm:"type:varchar(10)"`
	FullName      string          `gorm:"type:varchar(100);not null"`
	Phone         string          `gorm:"type:varchar(20);not null"`
	JoiningDate   time.Time       `gorm:"type:date;not null"`
	MonthlyRent   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentStatus string          `gorm:"type:varchar(10);not null;default:'pending'"`
	Status        string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
	Room     *RoomModel     `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:SET NULL"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the GuestModel.
func (GuestModel) TableName() string {
	return "guests"
}

// ToEntity converts a GuestModel to a domain Guest entity.
func (m *GuestModel) ToEntity() *entity.Guest {
	return &entity.Guest{
		ID:            m.ID,
		UserID:        m.UserID,
		PropertyID:    m.PropertyID,
		RoomID:        m.RoomID,
		BedNumber:     m.BedNumber,
		FullName:      m.FullName,
		Phone:         m.Phone,
		JoiningDate:   m.JoiningDate,
		MonthlyRent:   m.MonthlyRent,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		Status:        entity.GuestStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntityWithRoom converts a GuestModel with its Room to a GuestWithRoom
// entity.
func (m *GuestModel) ToEntityWithRoom() *entity.GuestWithRoom {
	result := &entity.GuestWithRoom{
		Guest: m.ToEntity(),
	}
	if m.Room != nil {
		result.Room = m.Room.ToEntity()
	}
	return result
}

// GuestFromEntity creates a GuestModel from a domain Guest entity.
func GuestFromEntity(guest *entity.Guest) *GuestModel {
	return &GuestModel{
		ID:            guest.ID,
		UserID:        guest.UserID,
		PropertyID:    guest.PropertyID,
		RoomID:        guest.RoomID,
		BedNumber:     guest.BedNumber,
		FullName:      guest.FullName,
		Phone:         guest.Phone,
		JoiningDate:   guest.JoiningDate,
		MonthlyRent:   guest.MonthlyRent,
		PaymentStatus: string(guest.PaymentStatus),
		Status:        string(guest.Status),
		CreatedAt:     guest.CreatedAt,
		UpdatedAt:     guest.UpdatedAt,
	}
}
