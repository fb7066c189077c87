// Package expense contains operating expense use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/application/usecase/report"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing a property's expenses.
type ListExpensesInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	FilterMode report.FilterMode
	StartDate  string
	EndDate    string
}

// ListExpensesOutput represents the expense list.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase lists the expenses of a property.
type ListExpensesUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute lists the property's expenses, newest first, narrowed by the
// date filter when one is set.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses = report.FilterByDate(expenses, func(e *entity.Expense) time.Time {
		return e.ExpenseDate
	}, input.FilterMode, input.StartDate, input.EndDate)

	return &ListExpensesOutput{Expenses: expenses}, nil
}
