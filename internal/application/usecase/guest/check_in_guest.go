// Package guest contains guest management use cases.
package guest

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

// CheckInGuestInput represents the input for checking in a new guest.
type CheckInGuestInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	RoomID      *uuid.UUID
	FullName    string
	Phone       string
	BedNumber   string
	JoiningDate time.Time
	MonthlyRent decimal.Decimal
}

// CheckInGuestOutput represents the output of a guest check-in.
type CheckInGuestOutput struct {
	Guest *entity.Guest
}

// CheckInGuestUseCase handles guest check-in logic.
type CheckInGuestUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
	roomRepo     adapter.RoomRepository
}

// NewCheckInGuestUseCase creates a new CheckInGuestUseCase instance.
func NewCheckInGuestUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository, roomRepo adapter.RoomRepository) *CheckInGuestUseCase {
	return &CheckInGuestUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
	}
}

// Execute performs the guest check-in. The write is two-step: the guest
// record is created first, then the room occupancy counter is bumped. If
// the second step fails the guest record stays and the error reports the
// partial state so the operator can retry the occupancy fix.
func (uc *CheckInGuestUseCase) Execute(ctx context.Context, input CheckInGuestInput) (*CheckInGuestOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	if err := validateGuestFields(input.FullName, input.Phone); err != nil {
		return nil, err
	}

	var room *entity.Room
	if input.RoomID != nil {
		var err error
		room, err = uc.roomRepo.FindByID(ctx, *input.RoomID)
		if err != nil {
			return nil, domainerror.NewRoomError(
				domainerror.ErrCodeRoomNotFound,
				"room not found",
				domainerror.ErrRoomNotFound,
			)
		}
		if room.PropertyID != input.PropertyID {
			return nil, domainerror.NewRoomError(
				domainerror.ErrCodeRoomNotInProperty,
				"room does not belong to the selected property",
				domainerror.ErrRoomNotInProperty,
			)
		}
		if room.IsFull() {
			return nil, domainerror.NewRoomError(
				domainerror.ErrCodeRoomAtCapacity,
				"room is at maximum occupancy",
				domainerror.ErrRoomAtCapacity,
			)
		}
	}

	guest := entity.NewGuest(input.PropertyID, input.RoomID, strings.TrimSpace(input.FullName), strings.TrimSpace(input.Phone), strings.TrimSpace(input.BedNumber), input.JoiningDate, input.MonthlyRent)

	if err := uc.guestRepo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	if room != nil {
		room.CurrentGuests++
		room.RecomputeStatus()
		if err := uc.roomRepo.UpdateOccupancy(ctx, room.ID, room.CurrentGuests, room.Status); err != nil {
			return nil, domainerror.NewGuestError(
				domainerror.ErrCodeOccupancyUpdateFailed,
				"guest record saved but room occupancy update failed",
				domainerror.ErrOccupancyUpdateFailed,
			)
		}
	}

	return &CheckInGuestOutput{Guest: guest}, nil
}

// validateGuestFields checks the required guest fields shared by check-in
// and update.
func validateGuestFields(fullName, phone string) error {
	if strings.TrimSpace(fullName) == "" {
		return domainerror.NewGuestError(
			domainerror.ErrCodeGuestNameRequired,
			"guest name is required",
			domainerror.ErrGuestNameRequired,
		)
	}
	if strings.TrimSpace(phone) == "" {
		return domainerror.NewGuestError(
			domainerror.ErrCodeGuestPhoneRequired,
			"guest phone is required",
			domainerror.ErrGuestPhoneRequired,
		)
	}
	return nil
}
