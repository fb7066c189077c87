// Package error defines domain-specific errors for the PG Desk application.
package error

import "errors"

// Room domain errors.
var (
	// ErrRoomNotFound is returned when a room is not found in the system.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNumberRequired is returned when a room is created without a number.
	ErrRoomNumberRequired = errors.New("room number is required")

	// ErrInvalidRoomType is returned when the room type is not a known value.
	ErrInvalidRoomType = errors.New("invalid room type")

	// ErrInvalidMaxOccupancy is returned when max occupancy is below one.
	ErrInvalidMaxOccupancy = errors.New("max occupancy must be at least 1")

	// ErrRoomAtCapacity is returned when a guest is checked into a full room.
	ErrRoomAtCapacity = errors.New("room is at maximum occupancy")

	// ErrRoomNotInProperty is returned when the room belongs to a different
	// property than the one in scope.
	ErrRoomNotInProperty = errors.New("room does not belong to the selected property")
)

// RoomErrorCode defines error codes for room errors.
// Format: ROOM-XXYYYY where XX is category and YYYY is specific error.
type RoomErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRoomNumberRequired  RoomErrorCode = "ROOM-010001"
	ErrCodeInvalidRoomType     RoomErrorCode = "ROOM-010002"
	ErrCodeInvalidMaxOccupancy RoomErrorCode = "ROOM-010003"
	ErrCodeMissingRoomFields   RoomErrorCode = "ROOM-010004"

	// Lookup errors (02XXXX)
	ErrCodeRoomNotFound      RoomErrorCode = "ROOM-020001"
	ErrCodeRoomNotInProperty RoomErrorCode = "ROOM-020002"

	// Occupancy errors (03XXXX)
	ErrCodeRoomAtCapacity RoomErrorCode = "ROOM-030001"
)

// RoomError represents a room error with code and message.
type RoomError struct {
	Code    RoomErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RoomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RoomError) Unwrap() error {
	return e.Err
}

// NewRoomError creates a new RoomError with the given code and message.
func NewRoomError(code RoomErrorCode, message string, err error) *RoomError {
	return &RoomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
