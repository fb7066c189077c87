// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// CreatePropertyInput represents the input for property creation.
type CreatePropertyInput struct {
	OwnerID uuid.UUID
	Name    string
	Address string
}

// CreatePropertyOutput represents the output of property creation.
type CreatePropertyOutput struct {
	Property *entity.Property
}

// CreatePropertyUseCase handles property creation logic.
type CreatePropertyUseCase struct {
	propertyRepo    adapter.PropertyRepository
	preferenceStore adapter.PreferenceStore
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(propertyRepo adapter.PropertyRepository, preferenceStore adapter.PreferenceStore) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo:    propertyRepo,
		preferenceStore: preferenceStore,
	}
}

// Execute performs the property creation. The owner's first property becomes
// their selected property automatically.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*CreatePropertyOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameRequired,
			"property name is required",
			domainerror.ErrPropertyNameRequired,
		)
	}

	existing, err := uc.propertyRepo.FindAccessibleByUser(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing properties: %w", err)
	}

	property := entity.NewProperty(input.OwnerID, name, strings.TrimSpace(input.Address))

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if len(existing) == 0 {
		// A failed preference write is not fatal; selection falls back to
		// the first accessible property on the next read.
		_ = uc.preferenceStore.SetSelectedProperty(ctx, input.OwnerID, property.ID)
	}

	return &CreatePropertyOutput{Property: property}, nil
}
