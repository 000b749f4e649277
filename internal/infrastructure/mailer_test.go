package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWelcomeMailer_DisabledWithoutAPIKey(t *testing.T) {
	mailer := NewWelcomeMailer("", "no-reply@example.com", zap.NewNop())

	assert.False(t, mailer.Enabled())
	assert.NoError(t, mailer.SendWelcome(context.Background(), "Ana", "ana@example.com"))
}
