package infrastructure

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// WelcomeMailer sends a best-effort welcome mail after registration.
// An empty API key disables it entirely.
type WelcomeMailer struct {
	apiKey string
	sender string
	logger *zap.Logger
}

func NewWelcomeMailer(apiKey, sender string, logger *zap.Logger) *WelcomeMailer {
	return &WelcomeMailer{
		apiKey: apiKey,
		sender: sender,
		logger: logger,
	}
}

func (m *WelcomeMailer) Enabled() bool {
	return m.apiKey != ""
}

func (m *WelcomeMailer) SendWelcome(ctx context.Context, name, recipientEmail string) error {
	if !m.Enabled() {
		return nil
	}

	from := mail.NewEmail("User Registry", m.sender)
	to := mail.NewEmail(name, recipientEmail)
	subject := "Welcome"

	plainTextContent := fmt.Sprintf("Hi %s, your account has been created.", name)
	htmlContent := fmt.Sprintf("<p>Hi %s, your account has been created.</p>", name)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(m.apiKey)

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		m.logger.Warn("failed to send welcome email",
			zap.String("email", recipientEmail),
			zap.Error(err))
		return err
	}

	m.logger.Info("welcome email sent",
		zap.String("email", recipientEmail),
		zap.Int("status_code", response.StatusCode))
	return nil
}
