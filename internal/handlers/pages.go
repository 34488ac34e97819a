package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/eloqagency/website/internal/components"
	"github.com/eloqagency/website/internal/version"
	"github.com/eloqagency/website/pkg/logger"
)

func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{
			Title:       "ELOQ' - Legal Precision, Designed",
			Description: "A strategic digital agency combining legal rigour with brutalist aesthetics. We build authoritative web experiences.",
			OGImage:     "/static/images/og-image.svg",
			BaseURL:     h.baseURL(r),
		},
		components.Navigation(),
		components.MainContent(
			components.Hero(),
			components.Services(),
			components.Work(),
			components.Strategist(h.snapshot(r)),
		),
		h.footer(r),
	)

	h.render(w, http.StatusOK, page)
}

func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, components.PrivacyPolicy)
}

func (h *Handler) Terms(w http.ResponseWriter, r *http.Request) {
	h.legal(w, r, components.TermsOfUse)
}

func (h *Handler) legal(w http.ResponseWriter, r *http.Request, doc components.LegalDocument) {
	page := components.Layout(
		components.PageConfig{
			Title:       doc.Title + " - ELOQ'",
			Description: doc.Title + " of ELOQ Agency.",
			BaseURL:     h.baseURL(r),
		},
		components.SubpageHeader(),
		components.MainContent(components.LegalPage(doc, h.cfg.Contact.PublicEmail)),
		h.footer(r),
	)

	h.render(w, http.StatusOK, page)
}

// NotFound is the router's fallback for unknown non-API paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.errorPage(w, r, http.StatusNotFound, "Page not found",
		"The page you are looking for does not exist or has moved. Our services are a good place to start.")
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.errorPage(w, r, http.StatusMethodNotAllowed, "Not allowed",
		"This address does not accept that kind of request.")
}

// Forbidden is served to cross-origin form posts.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.errorPage(w, r, http.StatusForbidden, "Access denied",
		"The request could not be verified. Reload the page and submit the form again.")
}

// ServerError is served when a page handler panics.
func (h *Handler) ServerError(w http.ResponseWriter, r *http.Request) {
	h.errorPage(w, r, http.StatusInternalServerError, "System offline",
		"Something went wrong on our side. Please try again in a few minutes.")
}

func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	page := components.Layout(
		components.PageConfig{
			Title:   fmt.Sprintf("%d %s - ELOQ'", status, title),
			BaseURL: h.baseURL(r),
			NoIndex: true,
		},
		components.SubpageHeader(),
		components.MainContent(components.ErrorPage(status, title, message)),
		h.footer(r),
	)

	h.render(w, status, page)
}

func (h *Handler) footer(r *http.Request) g.Node {
	return components.PageFooter(components.FooterConfig{
		Email:         h.cfg.Contact.PublicEmail,
		ContactStatus: contactStatus(r),
		Year:          h.now().Year(),
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.log.Warn("render page", slog.Int("status", status), logger.Error(err))
	}
}

func contactStatus(r *http.Request) string {
	switch s := r.URL.Query().Get("contact"); s {
	case components.ContactSent, components.ContactInvalid, components.ContactError:
		return s
	default:
		return ""
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: version.Version,
		Commit:  version.GitCommit,
	})
}

// Robots serves robots.txt pointing crawlers at the sitemap.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	lines := []string{
		"User-agent: *",
		"Allow: /",
		"Disallow: /api/",
		"",
		fmt.Sprintf("Sitemap: %s/sitemap.xml", h.baseURL(r)),
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(strings.Join(lines, "\n")))
}

// baseURL is PUBLIC_URL when set, else derived from the request.
func (h *Handler) baseURL(r *http.Request) string {
	if h.cfg.PublicURL != "" {
		return strings.TrimRight(h.cfg.PublicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
