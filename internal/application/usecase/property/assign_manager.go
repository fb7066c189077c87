// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// AssignManagerInput represents the input for assigning a manager.
// The manager is identified by their account email.
type AssignManagerInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Email      string
}

// AssignManagerOutput represents the output of a manager assignment.
type AssignManagerOutput struct {
	Manager *entity.ManagerWithUser
}

// AssignManagerUseCase handles manager assignment logic.
type AssignManagerUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	userRepo     adapter.UserRepository
}

// NewAssignManagerUseCase creates a new AssignManagerUseCase instance.
func NewAssignManagerUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, userRepo adapter.UserRepository) *AssignManagerUseCase {
	return &AssignManagerUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		userRepo:     userRepo,
	}
}

// Execute performs the manager assignment. Owner-only. The target must
// already hold an account; owners cannot be demoted into managers of their
// own property.
func (uc *AssignManagerUseCase) Execute(ctx context.Context, input AssignManagerInput) (*AssignManagerOutput, error) {
	property, err := EnsureOwner(ctx, uc.propertyRepo, input.PropertyID, input.UserID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeManagerUserNotFound,
			"no account found for that email",
			domainerror.ErrManagerNotFound,
		)
	}

	if user.ID == property.OwnerID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeManagerAlreadyAssigned,
			"the owner already has full access",
			domainerror.ErrManagerAlreadyAssigned,
		)
	}

	exists, err := uc.managerRepo.Exists(ctx, property.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check manager assignment: %w", err)
	}
	if exists {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeManagerAlreadyAssigned,
			"manager already assigned to property",
			domainerror.ErrManagerAlreadyAssigned,
		)
	}

	assignment := entity.NewPropertyManager(property.ID, user.ID)
	if err := uc.managerRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create manager assignment: %w", err)
	}

	return &AssignManagerOutput{
		Manager: &entity.ManagerWithUser{Assignment: assignment, User: user},
	}, nil
}
