// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// GetSelectedPropertyInput represents the input for resolving the working
// property.
type GetSelectedPropertyInput struct {
	UserID uuid.UUID
}

// GetSelectedPropertyOutput represents the resolved selection. Property is
// nil when the user has no accessible properties at all.
type GetSelectedPropertyOutput struct {
	Property *entity.Property
}

// GetSelectedPropertyUseCase resolves which property scopes the user's
// dashboard: the persisted selection if it is still accessible, otherwise
// the first accessible property, otherwise none.
type GetSelectedPropertyUseCase struct {
	propertyRepo    adapter.PropertyRepository
	preferenceStore adapter.PreferenceStore
}

// NewGetSelectedPropertyUseCase creates a new GetSelectedPropertyUseCase instance.
func NewGetSelectedPropertyUseCase(propertyRepo adapter.PropertyRepository, preferenceStore adapter.PreferenceStore) *GetSelectedPropertyUseCase {
	return &GetSelectedPropertyUseCase{
		propertyRepo:    propertyRepo,
		preferenceStore: preferenceStore,
	}
}

// Execute resolves the selection.
func (uc *GetSelectedPropertyUseCase) Execute(ctx context.Context, input GetSelectedPropertyInput) (*GetSelectedPropertyOutput, error) {
	accessible, err := uc.propertyRepo.FindAccessibleByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	if len(accessible) == 0 {
		return &GetSelectedPropertyOutput{}, nil
	}

	selectedID, found, err := uc.preferenceStore.GetSelectedProperty(ctx, input.UserID)
	if err == nil && found {
		for _, property := range accessible {
			if property.ID == selectedID {
				return &GetSelectedPropertyOutput{Property: property}, nil
			}
		}
		// Stale selection: the property was deleted or access was revoked.
		_ = uc.preferenceStore.ClearSelectedProperty(ctx, input.UserID)
	}

	first := accessible[0]
	_ = uc.preferenceStore.SetSelectedProperty(ctx, input.UserID, first.ID)
	return &GetSelectedPropertyOutput{Property: first}, nil
}
