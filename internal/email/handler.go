package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/metrics"
)

// UserRegisteredHandler sends the welcome email for new accounts.
type UserRegisteredHandler struct {
	mailer Mailer
	logger logger.Logger
}

func NewUserRegisteredHandler(mailer Mailer, log logger.Logger) *UserRegisteredHandler {
	return &UserRegisteredHandler{mailer: mailer, logger: log}
}

// Handle decodes the event payload and sends the welcome email. An event
// without a destination address can never be delivered and is dropped as
// handled.
func (h *UserRegisteredHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	var ev domain.UserRegistered
	if err := json.Unmarshal(raw, &ev); err != nil {
		return fmt.Errorf("decode UserRegistered: %w", err)
	}
	if ev.Email == "" {
		h.logger.Warn("UserRegistered without email, skipping",
			logger.String("user_id", ev.UserID))
		return nil
	}

	msg := Message{
		To:      ev.Email,
		Subject: "Welcome to BookHive",
		Body: fmt.Sprintf("Hi %s,\n\nYour account has been created. "+
			"Start building your favorites list today.\n\nThe BookHive team\n", ev.Username),
	}
	if err := h.mailer.Send(ctx, msg); err != nil {
		return err
	}

	metrics.EmailsSent.Inc()
	h.logger.Info("welcome email sent",
		logger.String("user_id", ev.UserID),
		logger.String("to", ev.Email),
	)
	return nil
}
