package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/eloqagency/website/internal/metrics"
	"github.com/eloqagency/website/pkg/logger"
	"github.com/eloqagency/website/pkg/tracing"
)

// Service validates contact messages and relays them to the inbox.
type Service struct {
	sender    Sender
	templates *Templates
	inbox     string
	log       *slog.Logger
	now       func() time.Time
}

func NewService(sender Sender, templates *Templates, inbox string, log *slog.Logger) *Service {
	return &Service{
		sender:    sender,
		templates: templates,
		inbox:     inbox,
		log:       log.With(logger.Scope("contact")),
		now:       time.Now,
	}
}

// Submit validates msg and sends it. Validation failures are returned as-is
// (see IsValidation); any delivery problem wraps ErrDeliveryFailed.
func (s *Service) Submit(ctx context.Context, msg Message) error {
	msg = msg.Normalize()
	if err := msg.Validate(); err != nil {
		metrics.ContactMessages.WithLabelValues("invalid").Inc()
		return err
	}

	ctx, span := tracing.Start(ctx, "contact.send")
	defer span.End()

	rendered, err := s.templates.Render(msg, s.now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		metrics.ContactMessages.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	result, err := s.sender.Send(ctx, SendOptions{
		To:      s.inbox,
		ReplyTo: msg.Email,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err == nil && !result.Success {
		err = errors.New(result.Error)
	}
	if err != nil {
		s.log.Error("contact message not delivered", logger.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		metrics.ContactMessages.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	s.log.Info("contact message delivered", slog.String("message_id", result.MessageID))
	metrics.ContactMessages.WithLabelValues("sent").Inc()
	return nil
}
