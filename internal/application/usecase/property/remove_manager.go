// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// RemoveManagerInput represents the input for removing a manager assignment.
type RemoveManagerInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	ManagerID  uuid.UUID
}

// RemoveManagerOutput represents the output of a manager removal.
type RemoveManagerOutput struct {
	Message string
}

// RemoveManagerUseCase handles manager removal logic.
type RemoveManagerUseCase struct {
	propertyRepo    adapter.PropertyRepository
	managerRepo     adapter.ManagerRepository
	preferenceStore adapter.PreferenceStore
}

// NewRemoveManagerUseCase creates a new RemoveManagerUseCase instance.
func NewRemoveManagerUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, preferenceStore adapter.PreferenceStore) *RemoveManagerUseCase {
	return &RemoveManagerUseCase{
		propertyRepo:    propertyRepo,
		managerRepo:     managerRepo,
		preferenceStore: preferenceStore,
	}
}

// Execute performs the manager removal. Owner-only.
func (uc *RemoveManagerUseCase) Execute(ctx context.Context, input RemoveManagerInput) (*RemoveManagerOutput, error) {
	property, err := EnsureOwner(ctx, uc.propertyRepo, input.PropertyID, input.UserID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.managerRepo.Exists(ctx, property.ID, input.ManagerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check manager assignment: %w", err)
	}
	if !exists {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeManagerNotFound,
			"manager assignment not found",
			domainerror.ErrManagerNotFound,
		)
	}

	if err := uc.managerRepo.Delete(ctx, property.ID, input.ManagerID); err != nil {
		return nil, fmt.Errorf("failed to delete manager assignment: %w", err)
	}

	// The removed manager may have this property selected; drop it so their
	// next read resolves a property they can still reach.
	selected, found, err := uc.preferenceStore.GetSelectedProperty(ctx, input.ManagerID)
	if err == nil && found && selected == property.ID {
		_ = uc.preferenceStore.ClearSelectedProperty(ctx, input.ManagerID)
	}

	return &RemoveManagerOutput{Message: "Manager removed"}, nil
}
