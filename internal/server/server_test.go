package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eloqagency/website/internal/config"
	"github.com/eloqagency/website/internal/contact"
	"github.com/eloqagency/website/internal/handlers"
	"github.com/eloqagency/website/internal/strategy"
)

type okSender struct{}

func (okSender) Send(context.Context, contact.SendOptions) (*contact.SendResult, error) {
	return &contact.SendResult{Success: true, MessageID: "ok"}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	return newTestRouterWith(t, func(*config.Config) {})
}

func newTestRouterWith(t *testing.T, configure func(*config.Config)) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Contact:   config.ContactConfig{Inbox: "inbox@eloq.agency", PublicEmail: "hello@eloq.agency"},
		Session:   config.SessionConfig{TTL: time.Minute},
		RateLimit: config.RateLimitConfig{StrategyPerMinute: 10, ContactPerMinute: 1},
	}
	configure(cfg)
	tpl, err := contact.NewTemplates()
	require.NoError(t, err)

	gen := strategy.GeneratorFunc(func(context.Context, strategy.Request) (string, error) {
		return "brief", nil
	})
	h := handlers.NewHandler(
		strategy.NewRegistry(gen, log, cfg.Session.TTL),
		contact.NewService(okSender{}, tpl, cfg.Contact.Inbox, log),
		cfg,
		log,
	)
	return NewRouter(RouterParams{Config: cfg, Log: log, Handler: h})
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Pages(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method      string
		path        string
		status      int
		contentType string
	}{
		{http.MethodGet, "/", http.StatusOK, "text/html"},
		{http.MethodGet, "/privacy", http.StatusOK, "text/html"},
		{http.MethodGet, "/terms", http.StatusOK, "text/html"},
		{http.MethodGet, "/nope", http.StatusNotFound, "text/html"},
		{http.MethodDelete, "/", http.StatusMethodNotAllowed, "text/html"},
		{http.MethodHead, "/", http.StatusOK, "text/html"},
		{http.MethodGet, "/health", http.StatusOK, "application/json"},
		{http.MethodGet, "/robots.txt", http.StatusOK, "text/plain"},
		{http.MethodGet, "/sitemap.xml", http.StatusOK, "application/xml"},
		{http.MethodGet, "/metrics", http.StatusOK, "text/plain"},
		{http.MethodGet, "/static/styles.css", http.StatusOK, "text/css"},
		{http.MethodGet, "/static/js/email-protect.js", http.StatusOK, "javascript"},
		{http.MethodGet, "/api/strategy", http.StatusOK, "application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
		})
	}
}

func TestRouter_APINotFoundIsJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"not_found"`)

	rec = do(router, httptest.NewRequest(http.MethodDelete, "/api/strategy", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"method_not_allowed"`)
}

func TestRouter_StrategyAPI(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, httptest.NewRequest(http.MethodPost, "/api/strategy", strings.NewReader(`{"prompt":"watches"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":"brief"`)
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))
}

func TestRouter_ContactIsRateLimited(t *testing.T) {
	router := newTestRouter(t)

	post := func() *httptest.ResponseRecorder {
		form := url.Values{"email": {"a@b.co"}, "message": {"hi"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return do(router, req)
	}

	assert.Equal(t, http.StatusSeeOther, post().Code)

	rec := post()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"retry_after":60`)

	assert.Equal(t, http.StatusOK, do(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code, "pages are not limited")
}

func contactForm(xff string) *http.Request {
	form := url.Values{"email": {"a@b.co"}, "message": {"hi"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.0.0.1:40000"
	req.Header.Set("X-Forwarded-For", xff)
	return req
}

func TestRouter_ProxyHeaders(t *testing.T) {
	tests := []struct {
		name   string
		trust  bool
		second int
	}{
		{"untrusted forwarded header cannot dodge the limit", false, http.StatusTooManyRequests},
		{"trusted proxy separates clients", true, http.StatusSeeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouterWith(t, func(cfg *config.Config) { cfg.TrustProxyHeaders = tt.trust })

			assert.Equal(t, http.StatusSeeOther, do(router, contactForm("203.0.113.1")).Code)
			assert.Equal(t, tt.second, do(router, contactForm("203.0.113.2")).Code)
		})
	}
}

func TestRouter_CrossOriginPostIsForbidden(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name        string
		path        string
		origin      string
		body        string
		contentType string
		status      int
		contains    string
	}{
		{"foreign form post", "/strategy", "https://evil.example", "prompt=x", "application/x-www-form-urlencoded", http.StatusForbidden, "Access denied"},
		{"foreign api post", "/api/strategy", "https://evil.example", `{"prompt":"x"}`, "application/json", http.StatusForbidden, `"code":"forbidden"`},
		{"opaque origin", "/api/strategy", "null", `{"prompt":"x"}`, "application/json", http.StatusForbidden, `"code":"forbidden"`},
		{"same origin", "/api/strategy", "http://example.com", `{"prompt":"x"}`, "application/json", http.StatusOK, `"status":"success"`},
		{"no origin", "/api/strategy", "", `{"prompt":"x"}`, "application/json", http.StatusOK, `"status":"success"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := do(router, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestRouter_ContactAPI(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"email":"a@b.co","message":"hi"}`)))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"status":"sent"}`, rec.Body.String())

	rec = do(router, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"email":"a@b.co","message":"hi"}`)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_DebugProfiler(t *testing.T) {
	tests := []struct {
		debug  bool
		status int
	}{
		{false, http.StatusNotFound},
		{true, http.StatusOK},
	}
	for _, tt := range tests {
		router := newTestRouterWith(t, func(cfg *config.Config) { cfg.Debug = tt.debug })
		rec := do(router, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
		assert.Equal(t, tt.status, rec.Code, "debug=%v", tt.debug)
	}
}

func TestRecoverer(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	page := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("error page"))
	}
	h := recoverer(log, page)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	tests := []struct {
		path     string
		contains string
	}{
		{"/", "error page"},
		{"/api/strategy", `"code":"internal_error"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(h, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
