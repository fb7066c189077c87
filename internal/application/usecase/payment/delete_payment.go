// Package payment contains rent payment use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	PaymentID  uuid.UUID
}

// DeletePaymentOutput represents the output of payment deletion.
type DeletePaymentOutput struct {
	Message string
}

// DeletePaymentUseCase handles payment deletion for correcting mistakes.
type DeletePaymentUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	paymentRepo  adapter.PaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, paymentRepo adapter.PaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		paymentRepo:  paymentRepo,
	}
}

// Execute performs the payment deletion. The guest's denormalized payment
// flag is left alone; summaries derive from the remaining payment rows.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) (*DeletePaymentOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotFound,
			"payment not found",
			domainerror.ErrPaymentNotFound,
		)
	}
	if payment.PropertyID != input.PropertyID {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotFound,
			"payment not found",
			domainerror.ErrPaymentNotFound,
		)
	}

	if err := uc.paymentRepo.Delete(ctx, payment.ID); err != nil {
		return nil, fmt.Errorf("failed to delete payment: %w", err)
	}

	return &DeletePaymentOutput{Message: "Payment deleted"}, nil
}
