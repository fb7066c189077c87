// Package guest contains guest management use cases.
package guest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListGuestsInput represents the input for listing a property's guests.
// Status narrows the list when set.
type ListGuestsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Status     *entity.GuestStatus
}

// ListGuestsOutput represents the guest list with room details.
type ListGuestsOutput struct {
	Guests []*entity.GuestWithRoom
}

// ListGuestsUseCase lists the guests of a property.
type ListGuestsUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	guestRepo    adapter.GuestRepository
}

// NewListGuestsUseCase creates a new ListGuestsUseCase instance.
func NewListGuestsUseCase(propertyRepo adapter.PropertyRepository, managerRepo adapter.ManagerRepository, guestRepo adapter.GuestRepository) *ListGuestsUseCase {
	return &ListGuestsUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		guestRepo:    guestRepo,
	}
}

// Execute lists the property's guests, newest first.
func (uc *ListGuestsUseCase) Execute(ctx context.Context, input ListGuestsInput) (*ListGuestsOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	guests, err := uc.guestRepo.FindByFilter(ctx, adapter.GuestFilter{
		PropertyID: input.PropertyID,
		Status:     input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	return &ListGuestsOutput{Guests: guests}, nil
}
