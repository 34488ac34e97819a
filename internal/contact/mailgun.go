package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/eloqagency/website/internal/config"
	"github.com/eloqagency/website/pkg/logger"
)

const mailgunSendTimeout = 30 * time.Second

// MailgunSender sends emails via the Mailgun API.
type MailgunSender struct {
	cfg    config.EmailConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgunSender creates a Mailgun sender.
// Returns nil if Mailgun is not configured.
func NewMailgunSender(cfg config.EmailConfig, log *slog.Logger) *MailgunSender {
	if !cfg.IsConfigured() {
		return nil
	}

	client := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunAPIBase != "" {
		client.SetAPIBase(cfg.MailgunAPIBase)
	}

	return &MailgunSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("contact.mailgun")),
		client: client,
	}
}

// Send sends an email via Mailgun. Delivery failures are reported in the
// result, not as an error.
func (s *MailgunSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)

	message := s.client.NewMessage(from, opts.Subject, opts.Text, opts.To)
	if opts.HTML != "" {
		message.SetHtml(opts.HTML)
	}
	if opts.ReplyTo != "" {
		message.SetReplyTo(opts.ReplyTo)
	}

	s.log.Debug("sending email",
		slog.String("to", opts.To),
		slog.String("subject", opts.Subject))

	sendCtx, cancel := context.WithTimeout(ctx, mailgunSendTimeout)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.log.Error("failed to send email",
			slog.String("to", opts.To),
			logger.Error(err))
		return &SendResult{
			Success: false,
			Error:   err.Error(),
		}, nil
	}

	s.log.Info("email sent",
		slog.String("to", opts.To),
		slog.String("message_id", messageID))

	return &SendResult{
		Success:   true,
		MessageID: messageID,
	}, nil
}
