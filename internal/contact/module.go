package contact

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/eloqagency/website/internal/config"
)

var Module = fx.Module("contact",
	fx.Provide(
		NewSender,
		NewTemplates,
		NewServiceFromConfig,
	),
)

// NewSender uses Mailgun when configured and enabled, otherwise logs messages.
func NewSender(cfg *config.Config, log *slog.Logger) Sender {
	if cfg.Email.Enabled {
		if s := NewMailgunSender(cfg.Email, log); s != nil {
			log.Info("using Mailgun sender",
				slog.String("domain", cfg.Email.MailgunDomain),
				slog.String("from", cfg.Email.FromEmail))
			return s
		}
	}

	log.Info("using log-only contact sender (Mailgun not configured or email disabled)")
	return newLogSender(log)
}

func NewServiceFromConfig(sender Sender, templates *Templates, cfg *config.Config, log *slog.Logger) *Service {
	return NewService(sender, templates, cfg.Contact.Inbox, log)
}
