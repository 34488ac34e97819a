// Package handlers serves the landing page and its form and JSON endpoints.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/eloqagency/website/internal/config"
	"github.com/eloqagency/website/internal/contact"
	"github.com/eloqagency/website/internal/strategy"
	"github.com/eloqagency/website/pkg/logger"
)

// VisitorCookie identifies a visitor's strategy flow.
const VisitorCookie = "eloq_sid"

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
)

type Handler struct {
	flows   *strategy.Registry
	contact *contact.Service
	cfg     *config.Config
	log     *slog.Logger
	now     func() time.Time
}

func NewHandler(flows *strategy.Registry, contactSvc *contact.Service, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		flows:   flows,
		contact: contactSvc,
		cfg:     cfg,
		log:     log.With(logger.Scope("handlers")),
		now:     time.Now,
	}
}

// visitorFromCookie returns the canonical form of the visitor id carried by
// the request, if any.
func visitorFromCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(VisitorCookie)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// visitorID returns the visitor's id, issuing a new cookie when the request
// carries none or a malformed one.
func (h *Handler) visitorID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := visitorFromCookie(r); ok {
		return id
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure || h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// snapshot returns the visitor's flow state without creating a flow.
func (h *Handler) snapshot(r *http.Request) strategy.Snapshot {
	id, ok := visitorFromCookie(r)
	if !ok {
		return strategy.Snapshot{}
	}
	if flow, ok := h.flows.Peek(id); ok {
		return flow.Snapshot()
	}
	return strategy.Snapshot{}
}
