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

// guestRepository implements the adapter.GuestRepository interface.
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository instance.
func NewGuestRepository(db *gorm.DB) adapter.GuestRepository {
	return &guestRepository{
		db: db,
	}
}

// Create creates a new guest in the database.
func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	guestModel := model.GuestFromEntity(guest)
	result := r.db.WithContext(ctx).Create(guestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a guest by its ID.
func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guestModel model.GuestModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&guestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGuestNotFound
		}
		return nil, result.Error
	}
	return guestModel.ToEntity(), nil
}

// FindByUserID retrieves the guest record linked to a portal account.
func (r *guestRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Guest, error) {
	var guestModel model.GuestModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&guestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGuestNotLinked
		}
		return nil, result.Error
	}
	return guestModel.ToEntity(), nil
}

// FindByFilter retrieves guests with their rooms, newest first.
func (r *guestRepository) FindByFilter(ctx context.Context, filter adapter.GuestFilter) ([]*entity.GuestWithRoom, error) {
	query := r.db.WithContext(ctx).
		Preload("Room").
		Where("property_id = ?", filter.PropertyID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var guestModels []model.GuestModel
	result := query.Order("created_at DESC").Find(&guestModels)
	if result.Error != nil {
		return nil, result.Error
	}

	guests := make([]*entity.GuestWithRoom, len(guestModels))
	for i, gm := range guestModels {
		guests[i] = gm.ToEntityWithRoom()
	}
	return guests, nil
}

// Update updates an existing guest in the database.
func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	guestModel := model.GuestFromEntity(guest)
	// Save skips zero-valued fields through struct updates; a cleared room
	// reference must still reach the database, so write the full column map.
	result := r.db.WithContext(ctx).
		Model(&model.GuestModel{}).
		Where("id = ?", guestModel.ID).
		Updates(map[string]any{
			"user_id":        guestModel.UserID,
			"room_id":        guestModel.RoomID,
			"bed_number":     guestModel.BedNumber,
			"full_name":      guestModel.FullName,
			"phone":          guestModel.Phone,
			"joining_date":   guestModel.JoiningDate,
			"monthly_rent":   guestModel.MonthlyRent,
			"payment_status": guestModel.PaymentStatus,
			"status":         guestModel.Status,
			"updated_at":     guestModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGuestNotFound
	}
	return nil
}

// Delete removes a guest from the database.
func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GuestModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
