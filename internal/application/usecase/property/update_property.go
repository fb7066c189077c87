// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// UpdatePropertyInput represents the input for property update.
type UpdatePropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Name       string
	Address    string
}

// UpdatePropertyOutput represents the output of property update.
type UpdatePropertyOutput struct {
	Property *entity.Property
}

// UpdatePropertyUseCase handles property update logic.
type UpdatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
}

// NewUpdatePropertyUseCase creates a new UpdatePropertyUseCase instance.
func NewUpdatePropertyUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
	}
}

// Execute performs the property update. Managers may edit property details;
// ownership never changes here.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, input UpdatePropertyInput) (*UpdatePropertyOutput, error) {
	property, err := EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameRequired,
			"property name is required",
			domainerror.ErrPropertyNameRequired,
		)
	}

	property.Name = name
	property.Address = strings.TrimSpace(input.Address)
	property.UpdatedAt = time.Now().UTC()

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return &UpdatePropertyOutput{Property: property}, nil
}
