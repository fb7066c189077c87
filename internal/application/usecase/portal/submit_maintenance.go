// Package portal contains the guest-facing portal use cases.
package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// SubmitMaintenanceInput represents the input for a maintenance request.
type SubmitMaintenanceInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Priority    entity.MaintenancePriority
}

// SubmitMaintenanceOutput represents the created request.
type SubmitMaintenanceOutput struct {
	Request *entity.MaintenanceRequest
}

// SubmitMaintenanceUseCase records a maintenance request from the portal.
type SubmitMaintenanceUseCase struct {
	guestRepo       adapter.GuestRepository
	maintenanceRepo adapter.MaintenanceRepository
}

// NewSubmitMaintenanceUseCase creates a new SubmitMaintenanceUseCase instance.
func NewSubmitMaintenanceUseCase(guestRepo adapter.GuestRepository, maintenanceRepo adapter.MaintenanceRepository) *SubmitMaintenanceUseCase {
	return &SubmitMaintenanceUseCase{
		guestRepo:       guestRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// Execute creates the request in pending status. An unset priority defaults
// to medium.
func (uc *SubmitMaintenanceUseCase) Execute(ctx context.Context, input SubmitMaintenanceInput) (*SubmitMaintenanceOutput, error) {
	guest, err := resolveGuest(ctx, uc.guestRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewMaintenanceError(
			domainerror.ErrCodeMaintenanceTitleRequired,
			"maintenance request title is required",
			domainerror.ErrMaintenanceTitleRequired,
		)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.MaintenancePriorityMedium
	}
	switch priority {
	case entity.MaintenancePriorityLow, entity.MaintenancePriorityMedium, entity.MaintenancePriorityHigh:
	default:
		return nil, domainerror.NewMaintenanceError(
			domainerror.ErrCodeInvalidMaintenancePriority,
			fmt.Sprintf("unknown maintenance priority %q", priority),
			domainerror.ErrInvalidMaintenancePriority,
		)
	}

	request := entity.NewMaintenanceRequest(guest.ID, guest.PropertyID, guest.RoomID, title, strings.TrimSpace(input.Description), priority)

	if err := uc.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}

	return &SubmitMaintenanceOutput{Request: request}, nil
}
