// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pgdesk/backend/internal/domain/entity"
)

// CheckInGuestRequest represents the request body for guest check-in.
type CheckInGuestRequest struct {
	RoomID      *string `json:"room_id,omitempty" binding:"omitempty,uuid"`
	FullName    string  `json:"full_name" binding:"required,min=1,max=255"`
	Phone       string  `json:"phone" binding:"required,min=1,max=20"`
	BedNumber   string  `json:"bed_number,omitempty" binding:"omitempty,max=20"`
	JoiningDate string  `json:"joining_date" binding:"required"`
	MonthlyRent float64 `json:"monthly_rent" binding:"omitempty,gte=0"`
}

// UpdateGuestRequest represents the request body for guest update.
type UpdateGuestRequest struct {
	RoomID      *string `json:"room_id,omitempty" binding:"omitempty,uuid"`
	FullName    string  `json:"full_name" binding:"required,min=1,max=255"`
	Phone       string  `json:"phone" binding:"required,min=1,max=20"`
	BedNumber   string  `json:"bed_number,omitempty" binding:"omitempty,max=20"`
	JoiningDate string  `json:"joining_date" binding:"required"`
	MonthlyRent float64 `json:"monthly_rent" binding:"omitempty,gte=0"`
}

// GuestResponse represents a single guest in API responses.
type GuestResponse struct {
	ID            string        `json:"id"`
	PropertyID    string        `json:"property_id"`
	RoomID        *string       `json:"room_id,omitempty"`
	Room          *RoomResponse `json:"room,omitempty"`
	BedNumber     string        `json:"bed_number"`
	FullName      string        `json:"full_name"`
	Phone         string        `json:"phone"`
	JoiningDate   string        `json:"joining_date"`
	MonthlyRent   string        `json:"monthly_rent"`
	PaymentStatus string        `json:"payment_status"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// GuestListResponse represents the response for listing guests.
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
}

// ToGuestResponse converts a domain Guest entity to a GuestResponse DTO.
func ToGuestResponse(guest *entity.Guest) GuestResponse {
	response := GuestResponse{
		ID:            guest.ID.String(),
		PropertyID:    guest.PropertyID.String(),
		BedNumber:     guest.BedNumber,
		FullName:      guest.FullName,
		Phone:         guest.Phone,
		JoiningDate:   guest.JoiningDate.Format("2006-01-02"),
		MonthlyRent:   guest.MonthlyRent.String(),
		PaymentStatus: string(guest.PaymentStatus),
		Status:        string(guest.Status),
		CreatedAt:     guest.CreatedAt,
		UpdatedAt:     guest.UpdatedAt,
	}

	if guest.RoomID != nil {
		roomIDStr := guest.RoomID.String()
		response.RoomID = &roomIDStr
	}

	return response
}

// ToGuestWithRoomResponse converts a GuestWithRoom to a GuestResponse DTO
// with the room embedded when assigned.
func ToGuestWithRoomResponse(gw *entity.GuestWithRoom) GuestResponse {
	response := ToGuestResponse(gw.Guest)
	if gw.Room != nil {
		room := ToRoomResponse(gw.Room)
		response.Room = &room
	}
	return response
}
