// Package portal contains the guest-facing portal use cases.
package portal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListMyMaintenanceInput represents the input for the guest's request list.
type ListMyMaintenanceInput struct {
	UserID uuid.UUID
}

// ListMyMaintenanceOutput represents the guest's maintenance requests.
type ListMyMaintenanceOutput struct {
	Requests []*entity.MaintenanceRequest
}

// ListMyMaintenanceUseCase lists the calling guest's maintenance requests.
type ListMyMaintenanceUseCase struct {
	guestRepo       adapter.GuestRepository
	maintenanceRepo adapter.MaintenanceRepository
}

// NewListMyMaintenanceUseCase creates a new ListMyMaintenanceUseCase instance.
func NewListMyMaintenanceUseCase(guestRepo adapter.GuestRepository, maintenanceRepo adapter.MaintenanceRepository) *ListMyMaintenanceUseCase {
	return &ListMyMaintenanceUseCase{
		guestRepo:       guestRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// Execute lists the guest's requests, newest first.
func (uc *ListMyMaintenanceUseCase) Execute(ctx context.Context, input ListMyMaintenanceInput) (*ListMyMaintenanceOutput, error) {
	guest, err := resolveGuest(ctx, uc.guestRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	requests, err := uc.maintenanceRepo.FindByGuest(ctx, guest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}

	return &ListMyMaintenanceOutput{Requests: requests}, nil
}
