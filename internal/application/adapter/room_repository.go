// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// RoomRepository defines the interface for room persistence operations.
type RoomRepository interface {
	// Create creates a new room in the database.
	Create(ctx context.Context, room *entity.Room) error

	// FindByID retrieves a room by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// FindByProperty retrieves all rooms for a property, ordered by room number.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error)

	// FindVacantByProperty retrieves all rooms with vacant status for a property.
	FindVacantByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error)

	// Update updates an existing room in the database.
	Update(ctx context.Context, room *entity.Room) error

	// UpdateOccupancy sets the guest counter and status for a room in one write.
	UpdateOccupancy(ctx context.Context, roomID uuid.UUID, currentGuests int, status entity.RoomStatus) error

	// Delete removes a room from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
