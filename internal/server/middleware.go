package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/eloqagency/website/pkg/apperror"
	"github.com/eloqagency/website/pkg/logger"
)

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

// recoverer turns a handler panic into a 500: the JSON envelope under /api
// and page otherwise.
func recoverer(log *slog.Logger, page http.HandlerFunc) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				log.Error("handler panic",
					slog.String("panic", fmt.Sprint(rvr)),
					slog.String("uri", r.RequestURI),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)

				if isAPI(r) {
					apperror.WriteJSON(w, log, apperror.ErrInternal)
					return
				}
				page(w, r)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// sameOrigin rejects POSTs whose Origin header names another host. Requests
// without Origin (curl, old browsers) pass.
func sameOrigin(log *slog.Logger, page http.HandlerFunc) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if r.Method != http.MethodPost || origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if u, err := url.Parse(origin); err == nil && u.Host != "" && strings.EqualFold(u.Host, r.Host) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn("cross-origin post rejected",
				slog.String("origin", origin),
				slog.String("host", r.Host),
				slog.String("uri", r.RequestURI),
			)
			if isAPI(r) {
				apperror.WriteJSON(w, log, apperror.ErrForbidden)
				return
			}
			page(w, r)
		})
	}
}
