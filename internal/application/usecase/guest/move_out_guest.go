// Package guest contains guest management use cases.
package guest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// MoveOutGuestInput represents the input for moving out a guest.
type MoveOutGuestInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	GuestID    uuid.UUID
}

// MoveOutGuestOutput represents the output of a guest move-out.
type MoveOutGuestOutput struct {
	Guest *entity.Guest
}

// MoveOutGuestUseCase handles guest move-out logic.
type MoveOutGuestUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
	roomRepo     adapter.RoomRepository
}

// NewMoveOutGuestUseCase creates a new MoveOutGuestUseCase instance.
func NewMoveOutGuestUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository, roomRepo adapter.RoomRepository) *MoveOutGuestUseCase {
	return &MoveOutGuestUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
	}
}

// Execute performs the guest move-out. The guest flips to moved_out and is
// detached from their room; the room occupancy counter is then decremented
// in a second write, with the same partial-failure reporting as check-in.
func (uc *MoveOutGuestUseCase) Execute(ctx context.Context, input MoveOutGuestInput) (*MoveOutGuestOutput, error) {
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
	if guest.Status != entity.GuestStatusActive {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeGuestNotActive,
			"guest is not active",
			domainerror.ErrGuestNotActive,
		)
	}

	previousRoomID := guest.RoomID
	guest.Status = entity.GuestStatusMovedOut
	guest.RoomID = nil
	guest.BedNumber = ""
	guest.UpdatedAt = time.Now().UTC()

	if err := uc.guestRepo.Update(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	if previousRoomID != nil {
		room, err := uc.roomRepo.FindByID(ctx, *previousRoomID)
		if err == nil {
			if room.CurrentGuests > 0 {
				room.CurrentGuests--
			}
			room.RecomputeStatus()
			err = uc.roomRepo.UpdateOccupancy(ctx, room.ID, room.CurrentGuests, room.Status)
		}
		if err != nil {
			return nil, domainerror.NewGuestError(
				domainerror.ErrCodeOccupancyUpdateFailed,
				"guest record saved but room occupancy update failed",
				domainerror.ErrOccupancyUpdateFailed,
			)
		}
	}

	return &MoveOutGuestOutput{Guest: guest}, nil
}
