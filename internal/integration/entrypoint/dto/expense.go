// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	ExpenseType string  `json:"expense_type" binding:"required,min=1,max=100"`
	Amount      float64 `json:"amount" binding:"required"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	ExpenseType string    `json:"expense_type"`
	Amount      string    `json:"amount"`
	ExpenseDate string    `json:"expense_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		PropertyID:  expense.PropertyID.String(),
		ExpenseType: expense.ExpenseType,
		Amount:      expense.Amount.String(),
		ExpenseDate: expense.ExpenseDate.Format("2006-01-02"),
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
	}
}
