// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	"github.com/pgdesk/backend/internal/integration/persistence/model"
)

// contentRepository implements the adapter.ContentRepository interface.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository instance.
func NewContentRepository(db *gorm.DB) adapter.ContentRepository {
	return &contentRepository{
		db: db,
	}
}

// CreateAnnouncement creates a new announcement.
func (r *contentRepository) CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error {
	announcementModel := model.AnnouncementFromEntity(announcement)
	result := r.db.WithContext(ctx).Create(announcementModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAnnouncementsByProperty retrieves announcements for a property, newest
// first.
func (r *contentRepository) FindAnnouncementsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Announcement, error) {
	var announcementModels []model.AnnouncementModel
	result := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&announcementModels)
	if result.Error != nil {
		return nil, result.Error
	}

	announcements := make([]*entity.Announcement, len(announcementModels))
	for i, am := range announcementModels {
		announcements[i] = am.ToEntity()
	}
	return announcements, nil
}

// CreateHouseRule creates a new house rule.
func (r *contentRepository) CreateHouseRule(ctx context.Context, rule *entity.HouseRule) error {
	ruleModel := model.HouseRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Create(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindHouseRulesByProperty retrieves house rules for a property, ordered by
// category then creation time.
func (r *contentRepository) FindHouseRulesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.HouseRule, error) {
	var ruleModels []model.HouseRuleModel
	result := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("category ASC, created_at ASC").
		Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rules := make([]*entity.HouseRule, len(ruleModels))
	for i, rm := range ruleModels {
		rules[i] = rm.ToEntity()
	}
	return rules, nil
}
