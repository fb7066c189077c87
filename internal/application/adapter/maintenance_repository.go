// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// MaintenanceRepository defines the interface for maintenance request persistence.
type MaintenanceRepository interface {
	// Create creates a new maintenance request in the database.
	Create(ctx context.Context, request *entity.MaintenanceRequest) error

	// FindByID retrieves a maintenance request by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRequest, error)

	// FindByGuest retrieves all requests submitted by a guest, newest first.
	FindByGuest(ctx context.Context, guestID uuid.UUID) ([]*entity.MaintenanceRequest, error)

	// FindByProperty retrieves all requests for a property, newest first.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.MaintenanceRequest, error)

	// Update updates an existing maintenance request in the database.
	Update(ctx context.Context, request *entity.MaintenanceRequest) error
}
