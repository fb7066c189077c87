// Package error defines domain-specific errors for the PG Desk application.
package error

import "errors"

// Guest domain errors.
var (
	// ErrGuestNotFound is returned when a guest is not found in the system.
	ErrGuestNotFound = errors.New("guest not found")

	// ErrGuestNameRequired is returned when a guest is created without a name.
	ErrGuestNameRequired = errors.New("guest name is required")

	// ErrGuestPhoneRequired is returned when a guest is created without a phone.
	ErrGuestPhoneRequired = errors.New("guest phone is required")

	// ErrInvalidGuestStatus is returned when the lifecycle status is unknown.
	ErrInvalidGuestStatus = errors.New("invalid guest status")

	// ErrGuestNotActive is returned when an operation requires an active guest.
	ErrGuestNotActive = errors.New("guest is not active")

	// ErrGuestNotLinked is returned when a portal user has no guest record.
	ErrGuestNotLinked = errors.New("no guest profile linked to this account")

	// ErrOccupancyUpdateFailed marks the partial-failure state of a two-step
	// check-in or move-out: the guest write committed but the room occupancy
	// update did not. Callers must surface this distinctly from a clean failure.
	ErrOccupancyUpdateFailed = errors.New("guest record saved but room occupancy update failed")
)

// GuestErrorCode defines error codes for guest errors.
// Format: GST-XXYYYY where XX is category and YYYY is specific error.
type GuestErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGuestNameRequired  GuestErrorCode = "GST-010001"
	ErrCodeGuestPhoneRequired GuestErrorCode = "GST-010002"
	ErrCodeInvalidGuestStatus GuestErrorCode = "GST-010003"
	ErrCodeMissingGuestFields GuestErrorCode = "GST-010004"

	// Lookup errors (02XXXX)
	ErrCodeGuestNotFound  GuestErrorCode = "GST-020001"
	ErrCodeGuestNotActive GuestErrorCode = "GST-020002"
	ErrCodeGuestNotLinked GuestErrorCode = "GST-020003"

	// Multi-step write errors (03XXXX)
	ErrCodeOccupancyUpdateFailed GuestErrorCode = "GST-030001"
)

// GuestError represents a guest error with code and message.
type GuestError struct {
	Code    GuestErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GuestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GuestError) Unwrap() error {
	return e.Err
}

// NewGuestError creates a new GuestError with the given code and message.
func NewGuestError(code GuestErrorCode, message string, err error) *GuestError {
	return &GuestError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
