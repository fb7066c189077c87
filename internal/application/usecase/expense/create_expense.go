// Package expense contains operating expense use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	ExpenseType string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Description string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	expenseType := strings.TrimSpace(input.ExpenseType)
	if expenseType == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseTypeRequired,
			"expense type is required",
			domainerror.ErrExpenseTypeRequired,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	expense := entity.NewExpense(input.PropertyID, input.UserID, expenseType, input.Amount, input.ExpenseDate, strings.TrimSpace(input.Description))

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
