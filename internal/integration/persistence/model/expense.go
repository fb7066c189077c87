// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExpenseType string          `gorm:"type:varchar(50);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		OwnerID:     m.OwnerID,
		ExpenseType: m.ExpenseType,
		Amount:      m.Amount,
		ExpenseDate: m.ExpenseDate,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		PropertyID:  expense.PropertyID,
		OwnerID:     expense.OwnerID,
		ExpenseType: expense.ExpenseType,
		Amount:      expense.Amount,
		ExpenseDate: expense.ExpenseDate,
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
	}
}
