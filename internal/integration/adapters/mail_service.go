// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/pgdesk/backend/internal/application/adapter"
)

// mailService implements the adapter.MailService interface using Resend.
type mailService struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewMailService creates a new Resend-backed mail service.
func NewMailService(apiKey, fromName, fromEmail string) adapter.MailService {
	return &mailService{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendPasswordResetMail sends the password reset link to the user.
func (s *mailService) SendPasswordResetMail(ctx context.Context, mail adapter.PasswordResetMail) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{mail.To},
		Subject: "Reset your password",
		Html:    passwordResetHTML(mail.UserName, mail.ResetURL),
		Text:    passwordResetText(mail.UserName, mail.ResetURL),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func passwordResetHTML(userName, resetURL string) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one. The link expires in 1 hour.</p>
<p><a href="%s">Reset password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`, userName, resetURL)
}

func passwordResetText(userName, resetURL string) string {
	return fmt.Sprintf(`Hi %s,

We received a request to reset your password. Open the link below to choose a new one. The link expires in 1 hour.

%s

If you did not request this, you can safely ignore this email.`, userName, resetURL)
}
