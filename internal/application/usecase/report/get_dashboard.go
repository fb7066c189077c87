package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/application/usecase/property"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// GetDashboardInput represents the input for dashboard statistics.
type GetDashboardInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// GetDashboardOutput represents the output of dashboard statistics.
type GetDashboardOutput struct {
	Stats DashboardStats
}

// GetDashboardUseCase computes the operator dashboard statistics for the
// property in scope.
type GetDashboardUseCase struct {
	propertyRepo adapter.PropertyRepository
	managerRepo  adapter.ManagerRepository
	roomRepo     adapter.RoomRepository
	guestRepo    adapter.GuestRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	propertyRepo adapter.PropertyRepository,
	managerRepo adapter.ManagerRepository,
	roomRepo adapter.RoomRepository,
	guestRepo adapter.GuestRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		propertyRepo: propertyRepo,
		managerRepo:  managerRepo,
		roomRepo:     roomRepo,
		guestRepo:    guestRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute loads the raw record collections and derives the statistics.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	if _, err := property.EnsureMember(ctx, uc.propertyRepo, uc.managerRepo, input.PropertyID, input.UserID); err != nil {
		return nil, err
	}

	rooms, err := uc.roomRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	guestsWithRooms, err := uc.guestRepo.FindByFilter(ctx, adapter.GuestFilter{PropertyID: input.PropertyID})
	if err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	guests := make([]*entity.Guest, len(guestsWithRooms))
	for i, gw := range guestsWithRooms {
		guests[i] = gw.Guest
	}

	return &GetDashboardOutput{
		Stats: ComputeDashboardStats(rooms, guests, expenses),
	}, nil
}
