package contact

import (
	"context"
	"log/slog"

	"github.com/eloqagency/website/pkg/logger"
)

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}

// SendOptions contains options for sending an email
type SendOptions struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// SendResult contains the result of sending an email
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// logSender records messages instead of sending them. Used when Mailgun is
// not configured.
type logSender struct {
	log *slog.Logger
}

func newLogSender(log *slog.Logger) *logSender {
	return &logSender{log: log.With(logger.Scope("contact.log"))}
}

func (s *logSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	s.log.Info("contact message (not sent)",
		slog.String("to", opts.To),
		slog.String("reply_to", opts.ReplyTo),
		slog.String("subject", opts.Subject),
		slog.String("text", opts.Text))

	return &SendResult{
		Success:   true,
		MessageID: "log-" + opts.ReplyTo,
	}, nil
}
