// Package portal contains the guest-facing portal use cases.
package portal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// PayRentInput represents the input for a guest-initiated rent payment.
// PaymentMonth may be any date inside the billing month being paid.
type PayRentInput struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	PaymentMonth  time.Time
	PaymentMethod entity.PaymentMethod
	Notes         string
}

// PayRentOutput represents the recorded payment.
type PayRentOutput struct {
	Payment *entity.Payment
}

// PayRentUseCase records a rent payment submitted from the guest portal.
type PayRentUseCase struct {
	guestRepo   adapter.GuestRepository
	paymentRepo adapter.PaymentRepository
	now         func() time.Time
}

// NewPayRentUseCase creates a new PayRentUseCase instance.
func NewPayRentUseCase(guestRepo adapter.GuestRepository, paymentRepo adapter.PaymentRepository, now func() time.Time) *PayRentUseCase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &PayRentUseCase{
		guestRepo:   guestRepo,
		paymentRepo: paymentRepo,
		now:         now,
	}
}

// Execute records the payment against the calling guest. Only active guests
// can pay; the payment date is always the current day.
func (uc *PayRentUseCase) Execute(ctx context.Context, input PayRentInput) (*PayRentOutput, error) {
	guest, err := resolveGuest(ctx, uc.guestRepo, input.UserID)
	if err != nil {
		return nil, err
	}
	if guest.Status != entity.GuestStatusActive {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeGuestNotActive,
			"guest is not active",
			domainerror.ErrGuestNotActive,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	now := uc.now()
	payment := entity.NewPayment(guest.ID, guest.RoomID, guest.PropertyID, input.Amount, now, input.PaymentMonth, input.PaymentMethod, strings.TrimSpace(input.Notes))

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	if payment.PaymentMonth.Equal(entity.FirstOfMonth(now)) && guest.PaymentStatus != entity.PaymentStatusPaid {
		guest.PaymentStatus = entity.PaymentStatusPaid
		guest.UpdatedAt = time.Now().UTC()
		_ = uc.guestRepo.Update(ctx, guest)
	}

	return &PayRentOutput{Payment: payment}, nil
}
