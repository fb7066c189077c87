// Package portal contains the guest-facing portal use cases. Every portal
// operation resolves the caller's guest record from their account; guests
// never pass guest or property IDs themselves.
package portal

import (
	"context"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
)

// GetProfileInput represents the input for fetching the portal profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the guest's profile with room and property.
type GetProfileOutput struct {
	Guest    *entity.Guest
	Room     *entity.Room
	Property *entity.Property
}

// GetProfileUseCase resolves the calling user's guest profile.
type GetProfileUseCase struct {
	guestRepo    adapter.GuestRepository
	roomRepo     adapter.RoomRepository
	propertyRepo adapter.PropertyRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(guestRepo adapter.GuestRepository, roomRepo adapter.RoomRepository, propertyRepo adapter.PropertyRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		propertyRepo: propertyRepo,
	}
}

// Execute loads the guest record linked to the account, plus their room and
// property when resolvable.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	guest, err := resolveGuest(ctx, uc.guestRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &GetProfileOutput{Guest: guest}

	if guest.RoomID != nil {
		if room, err := uc.roomRepo.FindByID(ctx, *guest.RoomID); err == nil {
			output.Room = room
		}
	}
	if property, err := uc.propertyRepo.FindByID(ctx, guest.PropertyID); err == nil {
		output.Property = property
	}

	return output, nil
}

// resolveGuest maps a portal account to its guest record.
func resolveGuest(ctx context.Context, guestRepo adapter.GuestRepository, userID uuid.UUID) (*entity.Guest, error) {
	guest, err := guestRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, domainerror.NewGuestError(
			domainerror.ErrCodeGuestNotLinked,
			"no guest profile linked to this account",
			domainerror.ErrGuestNotLinked,
		)
	}
	return guest, nil
}
