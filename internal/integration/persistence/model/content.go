// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// AnnouncementModel represents the announcements table.
type AnnouncementModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Message    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the AnnouncementModel.
func (AnnouncementModel) TableName() string {
	return "announcements"
}

// ToEntity converts an AnnouncementModel to a domain entity.
func (m *AnnouncementModel) ToEntity() *entity.Announcement {
	return &entity.Announcement{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		Title:      m.Title,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt,
	}
}

// AnnouncementFromEntity creates an AnnouncementModel from a domain entity.
func AnnouncementFromEntity(announcement *entity.Announcement) *AnnouncementModel {
	return &AnnouncementModel{
		ID:         announcement.ID,
		PropertyID: announcement.PropertyID,
		Title:      announcement.Title,
		Message:    announcement.Message,
		CreatedAt:  announcement.CreatedAt,
	}
}

// HouseRuleModel represents the house_rules table.
type HouseRuleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    string    `gorm:"type:varchar(50);not null;default:'general'"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the HouseRuleModel.
func (HouseRuleModel) TableName() string {
	return "house_rules"
}

// ToEntity converts a HouseRuleModel to a domain entity.
func (m *HouseRuleModel) ToEntity() *entity.HouseRule {
	return &entity.HouseRule{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		Category:    m.Category,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// HouseRuleFromEntity creates a HouseRuleModel from a domain entity.
func HouseRuleFromEntity(rule *entity.HouseRule) *HouseRuleModel {
	return &HouseRuleModel{
		ID:          rule.ID,
		PropertyID:  rule.PropertyID,
		Category:    rule.Category,
		Title:       rule.Title,
		Description: rule.Description,
		CreatedAt:   rule.CreatedAt,
	}
}
