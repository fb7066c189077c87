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

// UpdateGuestInput represents the input for guest update.
type UpdateGuestInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	GuestID     uuid.UUID
	RoomID      *uuid.UUID
	FullName    string
	Phone       string
	BedNumber   string
	JoiningDate time.Time
	MonthlyRent decimal.Decimal
}

// UpdateGuestOutput represents the output of guest update.
type UpdateGuestOutput struct {
	Guest *entity.Guest
}

// UpdateGuestUseCase handles guest update logic.
type UpdateGuestUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
	roomRepo     adapter.RoomRepository
}

// NewUpdateGuestUseCase creates a new UpdateGuestUseCase instance.
func NewUpdateGuestUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository, roomRepo adapter.RoomRepository) *UpdateGuestUseCase {
	return &UpdateGuestUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
	}
}

// Execute performs the guest update. A room change moves the occupancy
// counters of both rooms; the capacity check applies to the target room.
func (uc *UpdateGuestUseCase) Execute(ctx context.Context, input UpdateGuestInput) (*UpdateGuestOutput, error) {
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

	if err := validateGuestFields(input.FullName, input.Phone); err != nil {
		return nil, err
	}

	roomChanged := !uuidPtrEqual(guest.RoomID, input.RoomID)

	var targetRoom *entity.Room
	if roomChanged && input.RoomID != nil {
		targetRoom, err = uc.roomRepo.FindByID(ctx, *input.RoomID)
		if err != nil {
			return nil, domainerror.NewRoomError(
				domainerror.ErrCodeRoomNotFound,
				"room not found",
				domainerror.ErrRoomNotFound,
			)
		}
		if targetRoom.PropertyID != input.PropertyID {
			return nil, domainerror.NewRoomError(
				domainerror.ErrCodeRoomNotInProperty,
				"room does not belong to the selected property",
				domainerror.ErrRoomNotInProperty,
			)
		}
		if targetRoom.IsFull() {
			return nil, domainerror.NewRoomError(
				domainerror.ErrCodeRoomAtCapacity,
				"room is at maximum occupancy",
				domainerror.ErrRoomAtCapacity,
			)
		}
	}

	previousRoomID := guest.RoomID

	guest.FullName = strings.TrimSpace(input.FullName)
	guest.Phone = strings.TrimSpace(input.Phone)
	guest.BedNumber = strings.TrimSpace(input.BedNumber)
	guest.JoiningDate = input.JoiningDate
	guest.MonthlyRent = input.MonthlyRent
	guest.RoomID = input.RoomID
	guest.UpdatedAt = time.Now().UTC()

	if err := uc.guestRepo.Update(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	if roomChanged {
		if previousRoomID != nil {
			if err := uc.adjustOccupancy(ctx, *previousRoomID, -1); err != nil {
				return nil, err
			}
		}
		if targetRoom != nil {
			targetRoom.CurrentGuests++
			targetRoom.RecomputeStatus()
			if err := uc.roomRepo.UpdateOccupancy(ctx, targetRoom.ID, targetRoom.CurrentGuests, targetRoom.Status); err != nil {
				return nil, domainerror.NewGuestError(
					domainerror.ErrCodeOccupancyUpdateFailed,
					"guest record saved but room occupancy update failed",
					domainerror.ErrOccupancyUpdateFailed,
				)
			}
		}
	}

	return &UpdateGuestOutput{Guest: guest}, nil
}

// adjustOccupancy re-reads a room and applies a counter delta, clamped at
// zero.
func (uc *UpdateGuestUseCase) adjustOccupancy(ctx context.Context, roomID uuid.UUID, delta int) error {
	room, err := uc.roomRepo.FindByID(ctx, roomID)
	if err == nil {
		room.CurrentGuests += delta
		if room.CurrentGuests < 0 {
			room.CurrentGuests = 0
		}
		room.RecomputeStatus()
		err = uc.roomRepo.UpdateOccupancy(ctx, room.ID, room.CurrentGuests, room.Status)
	}
	if err != nil {
		return domainerror.NewGuestError(
			domainerror.ErrCodeOccupancyUpdateFailed,
			"guest record saved but room occupancy update failed",
			domainerror.ErrOccupancyUpdateFailed,
		)
	}
	return nil
}

// uuidPtrEqual compares two optional room references.
func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
