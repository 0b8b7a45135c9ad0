package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patchboard",
			Name:      "requests_total",
			Help:      "Total number of API requests.",
		},
		[]string{"method", "route", "status"},
	)

	// Duration is labeled by route alone. Render calls dominate the
	// latency profile and the per-status split adds cardinality without
	// telling us anything the counter does not.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "patchboard",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds, by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	requestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "patchboard",
			Name:      "requests_in_flight",
			Help:      "Number of API requests currently being processed.",
		},
	)
)

// Metrics records the request counter, per-route duration histogram,
// and in-flight gauge for every request passing through it.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := routeLabel(r)
		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel returns the chi route pattern so block IDs collapse into a
// single series per endpoint. Requests that never matched a route share
// the "unmatched" label.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
