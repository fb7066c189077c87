// Package portal contains the guest-facing portal use cases.
package portal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/report"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListMyPaymentsInput represents the input for the guest's payment history.
type ListMyPaymentsInput struct {
	UserID uuid.UUID
}

// ListMyPaymentsOutput represents the guest's payment history and summary.
type ListMyPaymentsOutput struct {
	Payments []*entity.Payment
	Summary  report.GuestPaymentSummary
}

// ListMyPaymentsUseCase lists the calling guest's payments with their
// derived payment position.
type ListMyPaymentsUseCase struct {
	guestRepo   adapter.GuestRepository
	paymentRepo adapter.PaymentRepository
	now         func() time.Time
}

// NewListMyPaymentsUseCase creates a new ListMyPaymentsUseCase instance.
func NewListMyPaymentsUseCase(guestRepo adapter.GuestRepository, paymentRepo adapter.PaymentRepository, now func() time.Time) *ListMyPaymentsUseCase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &ListMyPaymentsUseCase{
		guestRepo:   guestRepo,
		paymentRepo: paymentRepo,
		now:         now,
	}
}

// Execute loads the guest's payments, newest period first, and derives the
// summary.
func (uc *ListMyPaymentsUseCase) Execute(ctx context.Context, input ListMyPaymentsInput) (*ListMyPaymentsOutput, error) {
	guest, err := resolveGuest(ctx, uc.guestRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindByGuest(ctx, guest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	return &ListMyPaymentsOutput{
		Payments: payments,
		Summary:  report.ComputeGuestPaymentSummary(guest, payments, uc.now()),
	}, nil
}
