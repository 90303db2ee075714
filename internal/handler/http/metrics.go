package http

import (
	"net/http"
	"strconv"
	"time"

	"news-portal/internal/handler/http/pathutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Buckets span 5ms to 10s so p95/p99 stay measurable for both the
	// fast public reads and the slower admin writes.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	newsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_articles_total",
			Help: "Total number of news articles in the database",
		},
	)

	newsPublishedTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_articles_published",
			Help: "Number of published news articles",
		},
	)

	newsViewsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_views_total",
			Help: "Sum of view counters across all articles",
		},
	)
)

// MetricsMiddleware records request count, latency and response size.
// Paths are normalized to route templates so label cardinality stays
// bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		rw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(rw.size))
	})
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *metricsResponseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// UpdateNewsGauges refreshes the article gauges from the dashboard
// counters.
func UpdateNewsGauges(total, published, views int64) {
	newsTotal.Set(float64(total))
	newsPublishedTotal.Set(float64(published))
	newsViewsTotal.Set(float64(views))
}
