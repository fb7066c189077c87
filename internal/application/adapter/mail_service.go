// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// PasswordResetMail carries the fields needed to send a reset link.
type PasswordResetMail struct {
	To       string
	UserName string
	ResetURL string
}

// MailService defines the interface for transactional email delivery.
// Mail is sent synchronously within the triggering request.
type MailService interface {
	// SendPasswordResetMail sends the password reset link to the user.
	SendPasswordResetMail(ctx context.Context, mail PasswordResetMail) error
}
