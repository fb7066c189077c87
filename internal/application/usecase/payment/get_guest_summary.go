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
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// GetGuestSummaryInput represents the input for a guest payment summary.
type GetGuestSummaryInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	GuestID    uuid.UUID
}

// GetGuestSummaryOutput represents a guest's payment position and history.
type GetGuestSummaryOutput struct {
	Guest    *entity.Guest
	Summary  report.GuestPaymentSummary
	Payments []*entity.Payment
}

// GetGuestSummaryUseCase derives one guest's payment position.
type GetGuestSummaryUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
	paymentRepo  adapter.PaymentRepository
	now          func() time.Time
}

// NewGetGuestSummaryUseCase creates a new GetGuestSummaryUseCase instance.
func NewGetGuestSummaryUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository, paymentRepo adapter.PaymentRepository, now func() time.Time) *GetGuestSummaryUseCase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &GetGuestSummaryUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
		paymentRepo:  paymentRepo,
		now:          now,
	}
}

// Execute loads the guest and their payments and derives the summary.
func (uc *GetGuestSummaryUseCase) Execute(ctx context.Context, input GetGuestSummaryInput) (*GetGuestSummaryOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	guest, err := uc.guestRepo.FindByID(ctx, input.GuestID)
	if err != nil {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeGuestNotFound,
			"guest not found",
			domainerror.ErrGuestNotFound,
		)
	}
	if guest.PropertyID != input.PropertyID {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeGuestNotFound,
			"guest not found",
			domainerror.ErrGuestNotFound,
		)
	}

	payments, err := uc.paymentRepo.FindByGuest(ctx, guest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guest payments: %w", err)
	}

	return &GetGuestSummaryOutput{
		Guest:    guest,
		Summary:  report.ComputeGuestPaymentSummary(guest, payments, uc.now()),
		Payments: payments,
	}, nil
}
