// Package expense contains operating expense use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	ExpenseID  uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Message string
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	if expense.PropertyID != input.PropertyID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	return &DeleteExpenseOutput{Message: "Expense deleted"}, nil
}
