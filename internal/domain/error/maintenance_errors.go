// Package error defines domain-specific errors for the PG Desk application.
package error

import "errors"

// Maintenance request domain errors.
var (
	// ErrMaintenanceRequestNotFound is returned when a request is not found.
	ErrMaintenanceRequestNotFound = errors.New("maintenance request not found")

	// ErrMaintenanceTitleRequired is returned when a request has no title.
	ErrMaintenanceTitleRequired = errors.New("maintenance request title is required")

	// ErrInvalidMaintenancePriority is returned when the priority is unknown.
	ErrInvalidMaintenancePriority = errors.New("invalid maintenance priority")

	// ErrInvalidMaintenanceStatus is returned when the status is unknown.
	ErrInvalidMaintenanceStatus = errors.New("invalid maintenance status")
)

// MaintenanceErrorCode defines error codes for maintenance request errors.
// Format: MNT-XXYYYY where XX is category and YYYY is specific error.
type MaintenanceErrorCode string

const (
	ErrCodeMaintenanceTitleRequired   MaintenanceErrorCode = "MNT-010001"
	ErrCodeInvalidMaintenancePriority MaintenanceErrorCode = "MNT-010002"
	ErrCodeInvalidMaintenanceStatus   MaintenanceErrorCode = "MNT-010003"
	ErrCodeMissingMaintenanceFields   MaintenanceErrorCode = "MNT-010004"
	ErrCodeMaintenanceRequestNotFound MaintenanceErrorCode = "MNT-020001"
)

// MaintenanceError represents a maintenance request error with code and message.
type MaintenanceError struct {
	Code    MaintenanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MaintenanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MaintenanceError) Unwrap() error {
	return e.Err
}

// NewMaintenanceError creates a new MaintenanceError with the given code and message.
func NewMaintenanceError(code MaintenanceErrorCode, message string, err error) *MaintenanceError {
	return &MaintenanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
