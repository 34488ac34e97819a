package ratelimit

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/eloqagency/website/internal/metrics"
	"github.com/eloqagency/website/pkg/apperror"
	"github.com/eloqagency/website/pkg/logger"
)

// RetryAfterSeconds is advertised to throttled clients.
const RetryAfterSeconds = 60

// ClientIP returns the RemoteAddr host. Forwarded headers are not read
// here; the router rewrites RemoteAddr from them only when proxy headers
// are trusted.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects POST requests over the limit with 429. Other methods
// pass through uncounted. route labels the rejection metric.
func Middleware(l *Limiter, route string, log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("ratelimit"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r)
			if l.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			metrics.RateLimited.WithLabelValues(route).Inc()
			log.Warn("rate limit exceeded",
				slog.String("route", route),
				slog.String("ip", ip),
			)
			writeLimited(w)
		})
	}
}

func writeLimited(w http.ResponseWriter) {
	status, body := apperror.ToHTTPError(apperror.ErrRateLimited)
	body["retry_after"] = RetryAfterSeconds

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
