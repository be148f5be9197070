// Package metrics exposes Prometheus collectors for the imgscout service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	lookupsTotal               *prometheus.CounterVec
	categoryPagesTotal         *prometheus.CounterVec
	synonymFallbacksTotal      prometheus.Counter
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Lookup outcomes recorded by ObserveLookup.
const (
	OutcomeResolved    = "resolved"
	OutcomeExhausted   = "exhausted"
	OutcomeMissingWord = "missing_word"
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		lookupsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imgscout_lookups_total",
				Help: "Total number of image lookups, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		categoryPagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imgscout_category_pages_total",
				Help: "Total number of category pages fetched, labeled by HTTP status.",
			},
			[]string{"status"},
		)

		synonymFallbacksTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "imgscout_synonym_fallbacks_total",
				Help: "Total number of lookups that fell back to the synonym loop.",
			},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveLookup increments the lookup counter for the given outcome.
func ObserveLookup(outcome string) {
	lookupsTotal.WithLabelValues(outcome).Inc()
}

// ObserveCategoryPage records one category page fetch by HTTP status.
func ObserveCategoryPage(status int) {
	categoryPagesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// ObserveSynonymFallback increments the synonym fallback counter.
func ObserveSynonymFallback() {
	synonymFallbacksTotal.Inc()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
