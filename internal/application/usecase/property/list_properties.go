// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListPropertiesInput represents the input for listing accessible properties.
type ListPropertiesInput struct {
	UserID uuid.UUID
}

// ListPropertiesOutput represents the accessible property list.
type ListPropertiesOutput struct {
	Properties []*entity.Property
}

// ListPropertiesUseCase lists every property the user owns or manages.
type ListPropertiesUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(propertyRepo adapter.PropertyRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{propertyRepo: propertyRepo}
}

// Execute lists the user's accessible properties, oldest first.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, input ListPropertiesInput) (*ListPropertiesOutput, error) {
	properties, err := uc.propertyRepo.FindAccessibleByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return &ListPropertiesOutput{Properties: properties}, nil
}
