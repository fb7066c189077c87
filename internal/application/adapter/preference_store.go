// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// PreferenceStore persists per-user UI preferences, currently the selected
// property. A missing preference is reported as (uuid.Nil, false, nil), not
// as an error.
type PreferenceStore interface {
	// GetSelectedProperty returns the persisted selected property for a user.
	GetSelectedProperty(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)

	// SetSelectedProperty persists the selected property for a user.
	SetSelectedProperty(ctx context.Context, userID, propertyID uuid.UUID) error

	// ClearSelectedProperty removes the persisted selection for a user.
	ClearSelectedProperty(ctx context.Context, userID uuid.UUID) error
}
