// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// CreateRoomRequest represents the request body for room creation.
type CreateRoomRequest struct {
	RoomNumber   string  `json:"room_number" binding:"required,min=1,max=50"`
	RoomType     string  `json:"room_type" binding:"required,oneof=Single Double Sharing"`
	MonthlyRent  float64 `json:"monthly_rent" binding:"omitempty,gte=0"`
	MaxOccupancy int     `json:"max_occupancy" binding:"required,min=1"`
}

// UpdateRoomRequest represents the request body for room update.
type UpdateRoomRequest struct {
	RoomNumber   string  `json:"room_number" binding:"required,min=1,max=50"`
	RoomType     string  `json:"room_type" binding:"required,oneof=Single Double Sharing"`
	MonthlyRent  float64 `json:"monthly_rent" binding:"omitempty,gte=0"`
	MaxOccupancy int     `json:"max_occupancy" binding:"required,min=1"`
}

// RoomResponse represents a single room in API responses.
type RoomResponse struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	MonthlyRent   string    `json:"monthly_rent"`
	Status        string    `json:"status"`
	MaxOccupancy  int       `json:"max_occupancy"`
	CurrentGuests int       `json:"current_guests"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RoomListResponse represents the response for listing rooms.
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ToRoomResponse converts a domain Room entity to a RoomResponse DTO.
func ToRoomResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:            room.ID.String(),
		PropertyID:    room.PropertyID.String(),
		RoomNumber:    room.RoomNumber,
		RoomType:      string(room.RoomType),
		MonthlyRent:   room.MonthlyRent.String(),
		Status:        string(room.Status),
		MaxOccupancy:  room.MaxOccupancy,
		CurrentGuests: room.CurrentGuests,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}
