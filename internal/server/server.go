// Package server wires the HTTP router and runs it under the fx lifecycle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/eloqagency/website/internal/config"
	"github.com/eloqagency/website/internal/handlers"
	"github.com/eloqagency/website/internal/metrics"
	"github.com/eloqagency/website/internal/ratelimit"
	"github.com/eloqagency/website/internal/version"
	"github.com/eloqagency/website/pkg/apperror"
	"github.com/eloqagency/website/pkg/logger"
	"github.com/eloqagency/website/web"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Handler *handlers.Handler
}

// NewRouter creates the chi router with middleware and all routes.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	log := p.Log
	h := p.Handler

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(requestLogger(log))
	r.Use(recoverer(log, h.ServerError))
	r.Use(middleware.GetHead)
	r.Use(middleware.Compress(5, "text/html", "text/css", "application/javascript", "image/svg+xml"))
	r.Use(sameOrigin(log, h.Forbidden))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))

	strategyLimit := ratelimit.Middleware(ratelimit.New(cfg.RateLimit.StrategyPerMinute), "strategy", log)
	contactLimit := ratelimit.Middleware(ratelimit.New(cfg.RateLimit.ContactPerMinute), "contact", log)

	r.Get("/", h.LandingPage)
	r.Get("/privacy", h.Privacy)
	r.Get("/terms", h.Terms)
	r.Get("/health", handlers.Health)
	r.Get("/robots.txt", h.Robots)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.With(strategyLimit).Post("/strategy", h.SubmitStrategy)
	r.With(contactLimit).Post("/contact", h.SubmitContact)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(apperror.Handler(log, apperror.ErrNotFound))
		r.MethodNotAllowed(apperror.Handler(log, apperror.ErrMethodNotAllowed))

		r.Get("/strategy", h.StrategyStatus)
		r.With(strategyLimit).Post("/strategy", h.StrategyAPI)
		r.With(contactLimit).Post("/contact", h.ContactAPI)
	})

	if cfg.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	return r
}

// requestLogger logs one line per request, skipping health checks.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
			} else {
				log.Info("request", attrs...)
			}
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.String("version", version.Version),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
