// Package payment contains rent payment use cases.
package payment

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

// RecordPaymentInput represents the input for recording a rent payment.
// PaymentMonth may be any date inside the billing month it pays for.
type RecordPaymentInput struct {
	UserID        uuid.UUID
	PropertyID    uuid.UUID
	GuestID       uuid.UUID
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentMonth  time.Time
	PaymentMethod entity.PaymentMethod
	Notes         string
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Payment *entity.Payment
}

// RecordPaymentUseCase handles rent payment recording logic.
type RecordPaymentUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
	paymentRepo  adapter.PaymentRepository
	now          func() time.Time
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository, paymentRepo adapter.PaymentRepository, now func() time.Time) *RecordPaymentUseCase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &RecordPaymentUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
		paymentRepo:  paymentRepo,
		now:          now,
	}
}

// Execute records the payment. A payment for the current billing month also
// flips the guest's denormalized payment status to paid.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}
	if err := validatePaymentMethod(input.PaymentMethod); err != nil {
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
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentGuestMismatch,
			"guest does not belong to the selected property",
			domainerror.ErrPaymentGuestMismatch,
		)
	}

	payment := entity.NewPayment(guest.ID, guest.RoomID, input.PropertyID, input.Amount, input.PaymentDate, input.PaymentMonth, input.PaymentMethod, strings.TrimSpace(input.Notes))

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	if payment.PaymentMonth.Equal(entity.FirstOfMonth(uc.now())) && guest.PaymentStatus != entity.PaymentStatusPaid {
		guest.PaymentStatus = entity.PaymentStatusPaid
		guest.UpdatedAt = time.Now().UTC()
		// The payment itself committed; the flag is re-derivable from the
		// payment rows, so a failed write here is logged by the repo layer
		// and not surfaced.
		_ = uc.guestRepo.Update(ctx, guest)
	}

	return &RecordPaymentOutput{Payment: payment}, nil
}

// validatePaymentMethod checks the method against the known set.
func validatePaymentMethod(method entity.PaymentMethod) error {
	switch method {
	case entity.PaymentMethodCash, entity.PaymentMethodUPI, entity.PaymentMethodBankTransfer,
		entity.PaymentMethodCheque, entity.PaymentMethodCard, entity.PaymentMethodNetBanking:
		return nil
	default:
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentMethod,
			fmt.Sprintf("unknown payment method %q", method),
			domainerror.ErrInvalidPaymentMethod,
		)
	}
}
