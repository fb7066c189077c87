// Package error defines domain-specific errors for the PG Desk application.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found in the system.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPaymentAmount is returned when the amount is zero or negative.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrInvalidPaymentMethod is returned when the method is not a known value.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrPaymentGuestMismatch is returned when a payment references a guest
	// outside the property in scope.
	ErrPaymentGuestMismatch = errors.New("guest does not belong to the selected property")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPaymentAmount PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentMethod PaymentErrorCode = "PAY-010002"
	ErrCodeMissingPaymentFields PaymentErrorCode = "PAY-010003"

	// Lookup errors (02XXXX)
	ErrCodePaymentNotFound      PaymentErrorCode = "PAY-020001"
	ErrCodePaymentGuestMismatch PaymentErrorCode = "PAY-020002"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
