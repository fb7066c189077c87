// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// ContentRepository defines the interface for guest-facing property content
// (announcements and house rules).
type ContentRepository interface {
	// CreateAnnouncement creates a new announcement.
	CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error

	// FindAnnouncementsByProperty retrieves announcements for a property,
	// newest first.
	FindAnnouncementsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Announcement, error)

	// CreateHouseRule creates a new house rule.
	CreateHouseRule(ctx context.Context, rule *entity.HouseRule) error

	// FindHouseRulesByProperty retrieves house rules for a property, ordered
	// by category ascending.
	FindHouseRulesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.HouseRule, error)
}
