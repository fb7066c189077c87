// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// SelectPropertyInput represents the input for selecting the working property.
type SelectPropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// SelectPropertyOutput represents the output of the selection.
type SelectPropertyOutput struct {
	Property *entity.Property
}

// SelectPropertyUseCase persists which property scopes the user's dashboard.
type SelectPropertyUseCase struct {
	propertyRepo    adapter.PropertyRepository
	managerRepo     adapter.ManagerRepository
	preferenceStore adapter.PreferenceStore
}

// NewSelectPropertyUseCase creates a new SelectPropertyUseCase instance.
func NewSelectPropertyUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, preferenceStore adapter.PreferenceStore) *SelectPropertyUseCase {
	return &SelectPropertyUseCase{
		propertyRepo:    propertyRepo,
		managerRepo:     managerRepo,
		preferenceStore: preferenceStore,
	}
}

// Execute validates access and persists the selection.
func (uc *SelectPropertyUseCase) Execute(ctx context.Context, input SelectPropertyInput) (*SelectPropertyOutput, error) {
	property, err := EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.preferenceStore.SetSelectedProperty(ctx, input.UserID, property.ID); err != nil {
		return nil, fmt.Errorf("failed to persist property selection: %w", err)
	}

	return &SelectPropertyOutput{Property: property}, nil
}
