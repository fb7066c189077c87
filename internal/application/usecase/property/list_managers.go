// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListManagersInput represents the input for listing a property's managers.
type ListManagersInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// ListManagersOutput represents the manager list.
type ListManagersOutput struct {
	Managers []*entity.ManagerWithUser
}

// ListManagersUseCase lists the manager assignments of a property.
type ListManagersUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
}

// NewListManagersUseCase creates a new ListManagersUseCase instance.
func NewListManagersUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository) *ListManagersUseCase {
	return &ListManagersUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
	}
}

// Execute lists the property's managers. Any member may look.
func (uc *ListManagersUseCase) Execute(ctx context.Context, input ListManagersInput) (*ListManagersOutput, error) {
	if _, err := EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	managers, err := uc.managerRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}

	return &ListManagersOutput{Managers: managers}, nil
}
