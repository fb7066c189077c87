// Package payment contains rent payment use cases.
package payment

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

// ListPaymentsInput represents the input for listing a property's payments.
// The date filter fields mirror the dashboard's filter form.
type ListPaymentsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	FilterMode report.FilterMode
	StartDate  string
	EndDate    string
}

// ListPaymentsOutput represents the payment list with guest details.
type ListPaymentsOutput struct {
	Payments []*entity.PaymentWithGuest
}

// ListPaymentsUseCase lists the payments of a property.
type ListPaymentsUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	paymentRepo  adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		paymentRepo:  paymentRepo,
	}
}

// Execute lists the property's payments, newest first, narrowed by the
// date filter when one is set.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments = report.FilterByDate(payments, func(p *entity.PaymentWithGuest) time.Time {
		return p.Payment.PaymentDate
	}, input.FilterMode, input.StartDate, input.EndDate)

	return &ListPaymentsOutput{Payments: payments}, nil
}
