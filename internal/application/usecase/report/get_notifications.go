package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// GetNotificationsInput represents the input for fetching derived alerts.
type GetNotificationsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// GetNotificationsOutput represents the derived alert list.
type GetNotificationsOutput struct {
	Notifications []Notification
}

// GetNotificationsUseCase derives the alert list for a property from its
// current occupancy and payment state.
type GetNotificationsUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
	paymentRepo  adapter.PaymentRepository
	roomRepo     adapter.RoomRepository
	now          func() time.Time
}

// NewGetNotificationsUseCase creates a new GetNotificationsUseCase instance.
func NewGetNotificationsUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository, paymentRepo adapter.PaymentRepository, roomRepo adapter.RoomRepository, now func() time.Time) *GetNotificationsUseCase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &GetNotificationsUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
		paymentRepo:  paymentRepo,
		roomRepo:     roomRepo,
		now:          now,
	}
}

// Execute loads active guests, the current period's payments and the vacant
// rooms, then derives the alert list.
func (uc *GetNotificationsUseCase) Execute(ctx context.Context, input GetNotificationsInput) (*GetNotificationsOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	activeStatus := entity.GuestStatusActive
	activeGuests, err := uc.guestRepo.FindByFilter(ctx, adapter.GuestFilter{
		PropertyID: input.PropertyID,
		Status:     &activeStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load active guests: %w", err)
	}

	now := uc.now()
	currentPeriodPayments, err := uc.paymentRepo.FindByPropertyAndMonth(ctx, input.PropertyID, entity.FirstOfMonth(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load current period payments: %w", err)
	}

	vacantRooms, err := uc.roomRepo.FindVacantByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vacant rooms: %w", err)
	}

	return &GetNotificationsOutput{
		Notifications: DeriveNotifications(activeGuests, currentPeriodPayments, vacantRooms, now),
	}, nil
}
