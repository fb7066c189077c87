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

// maintenanceRepository implements the adapter.MaintenanceRepository interface.
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository instance.
func NewMaintenanceRepository(db *gorm.DB) adapter.MaintenanceRepository {
	return &maintenanceRepository{
		db: db,
	}
}

// Create creates a new maintenance request in the database.
func (r *maintenanceRepository) Create(ctx context.Context, request *entity.MaintenanceRequest) error {
	requestModel := model.MaintenanceRequestFromEntity(request)
	result := r.db.WithContext(ctx).Create(requestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a maintenance request by its ID.
func (r *maintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceRequest, error) {
	var requestModel model.MaintenanceRequestModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&requestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMaintenanceRequestNotFound
		}
		return nil, result.Error
	}
	return requestModel.ToEntity(), nil
}

// FindByGuest retrieves all requests submitted by a guest, newest first.
func (r *maintenanceRepository) FindByGuest(ctx context.Context, guestID uuid.UUID) ([]*entity.MaintenanceRequest, error) {
	var requestModels []model.MaintenanceRequestModel
	result := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&requestModels)
	if result.Error != nil {
		return nil, result.Error
	}

	requests := make([]*entity.MaintenanceRequest, len(requestModels))
	for i, rm := range requestModels {
		requests[i] = rm.ToEntity()
	}
	return requests, nil
}

// FindByProperty retrieves all requests for a property, newest first.
func (r *maintenanceRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.MaintenanceRequest, error) {
	var requestModels []model.MaintenanceRequestModel
	result := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&requestModels)
	if result.Error != nil {
		return nil, result.Error
	}

	requests := make([]*entity.MaintenanceRequest, len(requestModels))
	for i, rm := range requestModels {
		requests[i] = rm.ToEntity()
	}
	return requests, nil
}

// Update updates an existing maintenance request in the database.
func (r *maintenanceRepository) Update(ctx context.Context, request *entity.MaintenanceRequest) error {
	requestModel := model.MaintenanceRequestFromEntity(request)
	result := r.db.WithContext(ctx).Save(requestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
