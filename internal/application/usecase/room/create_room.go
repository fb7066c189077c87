// Package room contains room management use cases.
package room

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// CreateRoomInput represents the input for room creation.
type CreateRoomInput struct {
	UserID       uuid.UUID
	PropertyID   uuid.UUID
	RoomNumber   string
	RoomType     entity.RoomType
	MonthlyRent  decimal.Decimal
	MaxOccupancy int
}

// CreateRoomOutput represents the output of room creation.
type CreateRoomOutput struct {
	Room *entity.Room
}

// CreateRoomUseCase handles room creation logic.
type CreateRoomUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	roomRepo     adapter.RoomRepository
}

// NewCreateRoomUseCase creates a new CreateRoomUseCase instance.
func NewCreateRoomUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, roomRepo adapter.RoomRepository) *CreateRoomUseCase {
	return &CreateRoomUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		roomRepo:     roomRepo,
	}
}

// Execute performs the room creation.
func (uc *CreateRoomUseCase) Execute(ctx context.Context, input CreateRoomInput) (*CreateRoomOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	if err := validateRoomFields(input.RoomNumber, input.RoomType, input.MaxOccupancy); err != nil {
		return nil, err
	}

	room := entity.NewRoom(input.PropertyID, strings.TrimSpace(input.RoomNumber), input.RoomType, input.MonthlyRent, input.MaxOccupancy)

	if err := uc.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return &CreateRoomOutput{Room: room}, nil
}

// validateRoomFields checks the writable room fields shared by create and
// update.
func validateRoomFields(roomNumber string, roomType entity.RoomType, maxOccupancy int) error {
	if strings.TrimSpace(roomNumber) == "" {
		return domainerror.NewRoomError(
			domainerror.ErrCodeRoomNumberRequired,
			"room number is required",
			domainerror.ErrRoomNumberRequired,
		)
	}

	switch roomType {
	case entity.RoomTypeSingle, entity.RoomTypeDouble, entity.RoomTypeSharing:
	default:
		return domainerror.NewRoomError(
			domainerror.ErrCodeInvalidRoomType,
			fmt.Sprintf("unknown room type %q", roomType),
			domainerror.ErrInvalidRoomType,
		)
	}

	if maxOccupancy < 1 {
		return domainerror.NewRoomError(
			domainerror.ErrCodeInvalidMaxOccupancy,
			"max occupancy must be at least 1",
			domainerror.ErrInvalidMaxOccupancy,
		)
	}

	return nil
}
