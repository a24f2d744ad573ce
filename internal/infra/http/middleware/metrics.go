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

	matchRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_match_runs_total",
			Help: "Total number of lead analysis runs",
		},
	)

	leadsMatchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_matched_total",
			Help: "Total number of leads matched to a scenario",
		},
	)

	scanJobsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scan_jobs_published_total",
			Help: "Total number of rate-sheet scan jobs enqueued",
		},
	)

	scansProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scans_processed_total",
			Help: "Total number of rate-sheet scans processed by the worker",
		},
		[]string{"status"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
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

func RecordMatchRun(matched int) {
	matchRunsTotal.Inc()
	leadsMatchedTotal.Add(float64(matched))
}

func RecordScanJobPublished() {
	scanJobsPublished.Inc()
}

func RecordScanProcessed(status string) {
	scansProcessed.WithLabelValues(status).Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
