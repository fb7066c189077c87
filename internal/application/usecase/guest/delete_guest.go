// Package guest contains guest management use cases.
package guest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// DeleteGuestInput represents the input for guest deletion.
type DeleteGuestInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	GuestID    uuid.UUID
}

// DeleteGuestOutput represents the output of guest deletion.
type DeleteGuestOutput struct {
	Message string
}

// DeleteGuestUseCase handles permanent guest deletion. Move-out is the
// normal path; deletion is for records created by mistake.
type DeleteGuestUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
	roomRepo     adapter.RoomRepository
}

// NewDeleteGuestUseCase creates a new DeleteGuestUseCase instance.
func NewDeleteGuestUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository, roomRepo adapter.RoomRepository) *DeleteGuestUseCase {
	return &DeleteGuestUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
	}
}

// Execute performs the guest deletion, releasing their room slot when the
// guest was still active in one.
func (uc *DeleteGuestUseCase) Execute(ctx context.Context, input DeleteGuestInput) (*DeleteGuestOutput, error) {
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

	releaseRoomID := guest.RoomID
	if guest.Status != entity.GuestStatusActive {
		releaseRoomID = nil
	}

	if err := uc.guestRepo.Delete(ctx, guest.ID); err != nil {
		return nil, fmt.Errorf("failed to delete guest: %w", err)
	}

	if releaseRoomID != nil {
		room, err := uc.roomRepo.FindByID(ctx, *releaseRoomID)
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

	return &DeleteGuestOutput{Message: "Guest deleted"}, nil
}
