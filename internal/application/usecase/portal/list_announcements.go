// Package portal contains the guest-facing portal use cases.
package portal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
)

// ListAnnouncementsInput represents the input for the guest's announcements.
type ListAnnouncementsInput struct {
	UserID uuid.UUID
}

// ListAnnouncementsOutput represents the announcement list.
type ListAnnouncementsOutput struct {
	Announcements []*entity.Announcement
}

// ListAnnouncementsUseCase lists the announcements of the guest's property.
type ListAnnouncementsUseCase struct {
	guestRepo   adapter.GuestRepository
	contentRepo adapter.ContentRepository
}

// NewListAnnouncementsUseCase creates a new ListAnnouncementsUseCase instance.
func NewListAnnouncementsUseCase(guestRepo adapter.GuestRepository, contentRepo adapter.ContentRepository) *ListAnnouncementsUseCase {
	return &ListAnnouncementsUseCase{
		guestRepo:   guestRepo,
		contentRepo: contentRepo,
	}
}

// Execute lists the announcements, newest first.
func (uc *ListAnnouncementsUseCase) Execute(ctx context.Context, input ListAnnouncementsInput) (*ListAnnouncementsOutput, error) {
	guest, err := resolveGuest(ctx, uc.guestRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	announcements, err := uc.contentRepo.FindAnnouncementsByProperty(ctx, guest.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return &ListAnnouncementsOutput{Announcements: announcements}, nil
}
