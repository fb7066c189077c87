// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
	"github.com/pgdesk/backend/internal/integration/persistence/model"
)

// propertyRepository implements the adapter.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository(db *gorm.DB) adapter.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create creates a new property in the database.
func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	result := r.db.WithContext(ctx).Create(propertyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a property by its ID.
func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&propertyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return propertyModel.ToEntity(), nil
}

// FindAccessibleByUser retrieves all properties the user owns or manages.
func (r *propertyRepository) FindAccessibleByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error) {
	var propertyModels []model.PropertyModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? OR id IN (?)", userID,
			r.db.Model(&model.PropertyManagerModel{}).
				Select("property_id").
				Where("manager_id = ?", userID)).
		Order("created_at ASC").
		Find(&propertyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	properties := make([]*entity.Property, len(propertyModels))
	for i, pm := range propertyModels {
		properties[i] = pm.ToEntity()
	}
	return properties, nil
}

// Update updates an existing property in the database.
func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	result := r.db.WithContext(ctx).Save(propertyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a property from the database.
func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// managerRepository implements the adapter.ManagerRepository interface.
type managerRepository struct {
	db *gorm.DB
}

// NewManagerRepository creates a new manager repository instance.
func NewManagerRepository(db *gorm.DB) adapter.ManagerRepository {
	return &managerRepository{
		db: db,
	}
}

// Create creates a new manager assignment.
func (r *managerRepository) Create(ctx context.Context, assignment *entity.PropertyManager) error {
	assignmentModel := model.PropertyManagerFromEntity(assignment)
	result := r.db.WithContext(ctx).Create(assignmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByProperty retrieves all manager assignments for a property with users.
func (r *managerRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.ManagerWithUser, error) {
	var assignmentModels []model.PropertyManagerModel
	result := r.db.WithContext(ctx).
		Preload("Manager").
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&assignmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	managers := make([]*entity.ManagerWithUser, len(assignmentModels))
	for i, am := range assignmentModels {
		managers[i] = am.ToEntityWithUser()
	}
	return managers, nil
}

// Exists checks whether the user already manages the property.
func (r *managerRepository) Exists(ctx context.Context, propertyID, managerID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PropertyManagerModel{}).
		Where("property_id = ? AND manager_id = ?", propertyID, managerID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a manager assignment.
func (r *managerRepository) Delete(ctx context.Context, propertyID, managerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.PropertyManagerModel{}, "property_id = ? AND manager_id = ?", propertyID, managerID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
