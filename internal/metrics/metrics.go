// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StrategyRequests counts finished strategy submissions by outcome
	// (success, error, stale).
	StrategyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_strategy_requests_total",
		Help: "Total number of strategy generations by outcome",
	}, []string{"outcome"})

	StrategyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "website_strategy_duration_seconds",
		Help:    "Latency of the remote strategy generation call",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	})

	StrategySessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_strategy_sessions",
		Help: "Visitor strategy sessions currently held in memory",
	})

	ContactMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_contact_messages_total",
		Help: "Contact form submissions by result",
	}, []string{"result"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_rate_limited_total",
		Help: "Requests rejected by the per-IP rate limiter",
	}, []string{"route"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
