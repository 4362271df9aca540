package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ParseRequestsTotal tracks parse operations by input mode and outcome.
	ParseRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickspend_parse_requests_total",
			Help: "Total number of parse operations",
		},
		[]string{"mode", "outcome"},
	)

	// ParseDuration tracks local extraction duration.
	ParseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quickspend_parse_duration_seconds",
			Help:    "Local extraction duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	// NormalizerFallbacksTotal counts escalations to the remote normalizer.
	NormalizerFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quickspend_normalizer_fallbacks_total",
			Help: "Total number of escalations to the remote normalizer",
		},
	)

	// HTTPRequestsTotal tracks HTTP requests by path and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickspend_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "code"},
	)

	// HTTPDuration tracks HTTP request duration by path.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quickspend_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	// ActiveRequests tracks currently active HTTP requests.
	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quickspend_http_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"path"},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware collects Prometheus metrics for every request.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		ActiveRequests.WithLabelValues(path).Inc()
		defer ActiveRequests.WithLabelValues(path).Dec()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		HTTPDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
	})
}
