// Package room contains room management use cases.
package room

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

// UpdateRoomInput represents the input for room update.
type UpdateRoomInput struct {
	UserID       uuid.UUID
	PropertyID   uuid.UUID
	RoomID       uuid.UUID
	RoomNumber   string
	RoomType     entity.RoomType
	MonthlyRent  decimal.Decimal
	MaxOccupancy int
}

// UpdateRoomOutput represents the output of room update.
type UpdateRoomOutput struct {
	Room *entity.Room
}

// UpdateRoomUseCase handles room update logic.
type UpdateRoomUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	roomRepo     adapter.RoomRepository
}

// NewUpdateRoomUseCase creates a new UpdateRoomUseCase instance.
func NewUpdateRoomUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, roomRepo adapter.RoomRepository) *UpdateRoomUseCase {
	return &UpdateRoomUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		roomRepo:     roomRepo,
	}
}

// Execute performs the room update. Changing max occupancy re-derives the
// stored status so a shrunken room can flip to occupied.
func (uc *UpdateRoomUseCase) Execute(ctx context.Context, input UpdateRoomInput) (*UpdateRoomOutput, error) {
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

	if err := validateRoomFields(input.RoomNumber, input.RoomType, input.MaxOccupancy); err != nil {
		return nil, err
	}

	room.RoomNumber = strings.TrimSpace(input.RoomNumber)
	room.RoomType = input.RoomType
	room.MonthlyRent = input.MonthlyRent
	room.MaxOccupancy = input.MaxOccupancy
	room.RecomputeStatus()
	room.UpdatedAt = time.Now().UTC()

	if err := uc.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return &UpdateRoomOutput{Room: room}, nil
}
