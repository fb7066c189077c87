// Package room contains room management use cases.
package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListRoomsInput represents the input for listing a property's rooms.
type ListRoomsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// ListRoomsOutput represents the room list.
type ListRoomsOutput struct {
	Rooms []*entity.Room
}

// ListRoomsUseCase lists the rooms of a property.
type ListRoomsUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	roomRepo     adapter.RoomRepository
}

// NewListRoomsUseCase creates a new ListRoomsUseCase instance.
func NewListRoomsUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, roomRepo adapter.RoomRepository) *ListRoomsUseCase {
	return &ListRoomsUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		roomRepo:     roomRepo,
	}
}

// Execute lists the property's rooms, ordered by room number.
func (uc *ListRoomsUseCase) Execute(ctx context.Context, input ListRoomsInput) (*ListRoomsOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	rooms, err := uc.roomRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return &ListRoomsOutput{Rooms: rooms}, nil
}
