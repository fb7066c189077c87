// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// GuestFilter defines filter options for listing guests.
type GuestFilter struct {
	PropertyID uuid.UUID
	Status     *entity.GuestStatus
}

// GuestRepository defines the interface for guest persistence operations.
type GuestRepository interface {
	// Create creates a new guest in the database.
	Create(ctx context.Context, guest *entity.Guest) error

	// FindByID retrieves a guest by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)

	// FindByUserID retrieves the guest record linked to a portal account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Guest, error)

	// FindByFilter retrieves guests with their rooms, newest first.
	FindByFilter(ctx context.Context, filter GuestFilter) ([]*entity.GuestWithRoom, error)

	// Update updates an existing guest in the database. Full-record
	// overwrite semantics: the caller supplies the complete record.
	Update(ctx context.Context, guest *entity.Guest) error

	// Delete removes a guest from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
