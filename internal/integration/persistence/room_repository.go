// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pgdesk/backend/internal/application/adapter"
	"github.com/pgdesk/backend/internal/domain/entity"
	domainerror "github.com/pgdesk/backend/internal/domain/error"
	"github.com/pgdesk/backend/internal/integration/persistence/model"
)

// roomRepository implements the adapter.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository instance.
func NewRoomRepository(db *gorm.DB) adapter.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// Create creates a new room in the database.
func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	roomModel := model.RoomFromEntity(room)
	result := r.db.WithContext(ctx).Create(roomModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a room by its ID.
func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomModel model.RoomModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&roomModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRoomNotFound
		}
		return nil, result.Error
	}
	return roomModel.ToEntity(), nil
}

// FindByProperty retrieves all rooms for a property, ordered by room number.
func (r *roomRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error) {
	var roomModels []model.RoomModel
	result := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("room_number ASC").
		Find(&roomModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rooms := make([]*entity.Room, len(roomModels))
	for i, rm := range roomModels {
		rooms[i] = rm.ToEntity()
	}
	return rooms, nil
}

// FindVacantByProperty retrieves all rooms with vacant status for a property.
func (r *roomRepository) FindVacantByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error) {
	var roomModels []model.RoomModel
	result := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, string(entity.RoomStatusVacant)).
		Order("room_number ASC").
		Find(&roomModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rooms := make([]*entity.Room, len(roomModels))
	for i, rm := range roomModels {
		rooms[i] = rm.ToEntity()
	}
	return rooms, nil
}

// Update updates an existing room in the database.
func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	roomModel := model.RoomFromEntity(room)
	result := r.db.WithContext(ctx).Save(roomModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateOccupancy sets the guest counter and status for a room in one write.
func (r *roomRepository) UpdateOccupancy(ctx context.Context, roomID uuid.UUID, currentGuests int, status entity.RoomStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ?", roomID).
		Updates(map[string]any{
			"current_guests": currentGuests,
			"status":         string(status),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRoomNotFound
	}
	return nil
}

// Delete removes a room from the database.
func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RoomModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
