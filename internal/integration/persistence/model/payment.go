// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GuestID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	RoomID        *uuid.UUID      `gorm:"type:uuid;index"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index"`
	PaymentMonth  time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`

	Guest    *GuestModel    `gorm:"foreignKey:GuestID;references:ID;constraint:OnDelete:CASCADE"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:            m.ID,
		GuestID:       m.GuestID,
		RoomID:        m.RoomID,
		PropertyID:    m.PropertyID,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		PaymentMonth:  m.PaymentMonth,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ToEntityWithGuest converts a PaymentModel with its Guest to a
// PaymentWithGuest entity.
func (m *PaymentModel) ToEntityWithGuest() *entity.PaymentWithGuest {
	result := &entity.PaymentWithGuest{
		Payment: m.ToEntity(),
	}
	if m.Guest != nil {
		result.Guest = m.Guest.ToEntity()
	}
	return result
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:            payment.ID,
		GuestID:       payment.GuestID,
		RoomID:        payment.RoomID,
		PropertyID:    payment.PropertyID,
		Amount:        payment.Amount,
		PaymentDate:   payment.PaymentDate,
		PaymentMonth:  payment.PaymentMonth,
		PaymentMethod: string(payment.PaymentMethod),
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
}
