// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a property-scoped notice surfaced to guests.
type Announcement struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Title      string
	Message    string
	CreatedAt  time.Time
}

// NewAnnouncement creates a new Announcement entity.
func NewAnnouncement(propertyID uuid.UUID, title, message string) *Announcement {
	return &Announcement{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Title:      title,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
}

// HouseRule is a property-scoped rule surfaced to guests, grouped by
// category on display (general, timing, visitors, cleanliness, ...).
type HouseRule struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Category   string
	Title      string
	Description string
	CreatedAt  time.Time
}

// NewHouseRule creates a new HouseRule entity. An empty category is
// normalized to "general" so grouping always has a bucket.
func NewHouseRule(propertyID uuid.UUID, category, title, description string) *HouseRule {
	if category == "" {
		category = "general"
	}
	return &HouseRule{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		Category:    category,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
