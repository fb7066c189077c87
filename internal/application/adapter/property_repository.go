// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence operations.
type PropertyRepository interface {
	// Create creates a new property in the database.
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a property by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindAccessibleByUser retrieves all properties the user owns or manages,
	// ordered by creation time ascending.
	FindAccessibleByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error)

	// Update updates an existing property in the database.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ManagerRepository defines the interface for property-manager assignments.
type ManagerRepository interface {
	// Create creates a new manager assignment.
	Create(ctx context.Context, assignment *entity.PropertyManager) error

	// FindByProperty retrieves all manager assignments for a property with
	// the resolved user records.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.ManagerWithUser, error)

	// Exists checks whether the user already manages the property.
	Exists(ctx context.Context, propertyID, managerID uuid.UUID) (bool, error)

	// Delete removes a manager assignment.
	Delete(ctx context.Context, propertyID, managerID uuid.UUID) error
}
