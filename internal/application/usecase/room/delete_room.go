// Package room contains room management use cases.
package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// DeleteRoomInput represents the input for room deletion.
type DeleteRoomInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	RoomID     uuid.UUID
}

// DeleteRoomOutput represents the output of room deletion.
type DeleteRoomOutput struct {
	Message string
}

// DeleteRoomUseCase handles room deletion logic.
type DeleteRoomUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	roomRepo     adapter.RoomRepository
}

// NewDeleteRoomUseCase creates a new DeleteRoomUseCase instance.
func NewDeleteRoomUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, roomRepo adapter.RoomRepository) *DeleteRoomUseCase {
	return &DeleteRoomUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		roomRepo:     roomRepo,
	}
}

// Execute performs the room deletion. Guests assigned to the room keep their
// records; their room reference is cleared at the database level.
func (uc *DeleteRoomUseCase) Execute(ctx context.Context, input DeleteRoomInput) (*DeleteRoomOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	room, err := uc.roomRepo.FindByID(ctx, input.RoomID)
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

	if err := uc.roomRepo.Delete(ctx, room.ID); err != nil {
		return nil, fmt.Errorf("failed to delete room: %w", err)
	}

	return &DeleteRoomOutput{Message: "Room deleted"}, nil
}
