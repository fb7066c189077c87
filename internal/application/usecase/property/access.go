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

// EnsureMember loads a property and verifies the user owns or manages it.
// Scoped operations on rooms, guests, payments and expenses call this before
// touching any property data.
func EnsureMember(ctx context.Context, propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, propertyID, userID uuid.UUID) (*entity.Property, error) {
	property, err := propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	if property.OwnerID == userID {
		return property, nil
	}

	manages, err := managerRepo.Exists(ctx, propertyID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check manager assignment: %w", err)
	}
	if !manages {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeNotPropertyMember,
			"no access to this property",
			domainerror.ErrNotPropertyMember,
		)
	}

	return property, nil
}

// EnsureOwner loads a property and verifies the user owns it. Manager
// assignment changes and property deletion are owner-only.
func EnsureOwner(ctx context.Context, propertyRepo adapter.PropertyRepository, propertyID, userID uuid.UUID) (*entity.Property, error) {
	property, err := propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	if property.OwnerID != userID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeNotPropertyOwner,
			"only the property owner can perform this operation",
			domainerror.ErrNotPropertyOwner,
		)
	}

	return property, nil
}
