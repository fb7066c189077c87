// Package error defines domain-specific errors for the PG Desk application.
package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property is not found in the system.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyNameRequired is returned when a property is created without a name.
	ErrPropertyNameRequired = errors.New("property name is required")

	// ErrNotPropertyOwner is returned when a user who does not own the property
	// attempts an owner-only operation.
	ErrNotPropertyOwner = errors.New("not the property owner")

	// ErrNotPropertyMember is returned when a user is neither owner nor manager
	// of the property they are querying.
	ErrNotPropertyMember = errors.New("no access to this property")

	// ErrManagerAlreadyAssigned is returned when the user is already a manager
	// of the property.
	ErrManagerAlreadyAssigned = errors.New("manager already assigned to property")

	// ErrManagerNotFound is returned when a manager assignment does not exist.
	ErrManagerNotFound = errors.New("manager assignment not found")

	// ErrNoPropertySelected is returned when a scoped operation is attempted
	// with no resolvable property.
	ErrNoPropertySelected = errors.New("no property selected")
)

// PropertyErrorCode defines error codes for property errors.
// Format: PROP-XXYYYY where XX is category and YYYY is specific error.
type PropertyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePropertyNameRequired  PropertyErrorCode = "PROP-010001"
	ErrCodeMissingPropertyFields PropertyErrorCode = "PROP-010002"

	// Lookup/authorization errors (02XXXX)
	ErrCodePropertyNotFound  PropertyErrorCode = "PROP-020001"
	ErrCodeNotPropertyOwner  PropertyErrorCode = "PROP-020002"
	ErrCodeNotPropertyMember PropertyErrorCode = "PROP-020003"
	ErrCodeNoPropertySelected PropertyErrorCode = "PROP-020004"

	// Manager assignment errors (03XXXX)
	ErrCodeManagerAlreadyAssigned PropertyErrorCode = "PROP-030001"
	ErrCodeManagerNotFound        PropertyErrorCode = "PROP-030002"
	ErrCodeManagerUserNotFound    PropertyErrorCode = "PROP-030003"
)

// PropertyError represents a property error with code and message.
type PropertyError struct {
	Code    PropertyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError creates a new PropertyError with the given code and message.
func NewPropertyError(code PropertyErrorCode, message string, err error) *PropertyError {
	return &PropertyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
