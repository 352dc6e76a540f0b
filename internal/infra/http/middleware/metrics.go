package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	enquiriesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiries_received_total",
			Help: "Total number of contact/demo form submissions",
		},
		[]string{"role", "outcome"},
	)

	notificationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_errors_total",
			Help: "Total number of enquiry notification failures",
		},
		[]string{"stage"},
	)

	contentFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fallbacks_total",
			Help: "Total number of content blocks served from compiled-in defaults",
		},
		[]string{"page", "type"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordEnquiry(role, outcome string) {
	enquiriesReceived.WithLabelValues(role, outcome).Inc()
}

func RecordNotificationError(stage string) {
	notificationErrors.WithLabelValues(stage).Inc()
}

func RecordContentFallback(page, blockType string) {
	contentFallbacks.WithLabelValues(page, blockType).Inc()
}
