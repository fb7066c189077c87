// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents an operating expense recorded against a property.
// ExpenseType is a free-text category (Electricity, Water, Maintenance, ...).
type Expense struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	OwnerID     uuid.UUID
	ExpenseType string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Description string
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(propertyID, ownerID uuid.UUID, expenseType string, amount decimal.Decimal, expenseDate time.Time, description string) *Expense {
	return &Expense{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		OwnerID:     ownerID,
		ExpenseType: expenseType,
		Amount:      amount,
		ExpenseDate: expenseDate,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
