// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
)

// DeletePropertyInput represents the input for property deletion.
type DeletePropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// DeletePropertyOutput represents the output of property deletion.
type DeletePropertyOutput struct {
	Message string
}

// DeletePropertyUseCase handles property deletion logic.
type DeletePropertyUseCase struct {
	propertyRepo    adapter.PropertyRepository
	preferenceStore adapter.PreferenceStore
}

// NewDeletePropertyUseCase creates a new DeletePropertyUseCase instance.
func NewDeletePropertyUseCase(propertyRepo adapter.PropertyRepository, preferenceStore adapter.PreferenceStore) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo:    propertyRepo,
		preferenceStore: preferenceStore,
	}
}

// Execute performs the property deletion. Owner-only; dependent rooms,
// guests, payments and expenses cascade at the database level.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, input DeletePropertyInput) (*DeletePropertyOutput, error) {
	property, err := EnsureOwner(ctx, uc.propertyRepo, input.PropertyID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.Delete(ctx, property.ID); err != nil {
		return nil, fmt.Errorf("failed to delete property: %w", err)
	}

	// Drop a stale selection so the next read falls back to the first
	// remaining property.
	selected, found, err := uc.preferenceStore.GetSelectedProperty(ctx, input.UserID)
	if err == nil && found && selected == property.ID {
		_ = uc.preferenceStore.ClearSelectedProperty(ctx, input.UserID)
	}

	return &DeletePropertyOutput{Message: "Property deleted"}, nil
}
