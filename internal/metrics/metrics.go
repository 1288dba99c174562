package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes application metrics that are safe to scrape via Prometheus.
type Metrics struct {
	registry            *prometheus.Registry
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	containers          *prometheus.CounterVec
	fetchDuration       prometheus.Histogram
	markersSkipped      prometheus.Counter
}

// New creates a fresh Metrics registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ggmap",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ggmap",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	containers := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ggmap",
		Name:      "containers_total",
		Help:      "Map containers processed, by outcome",
	}, []string{"outcome"})

	fetchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ggmap",
		Name:      "config_fetch_duration_seconds",
		Help:      "Duration of map config fetches",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	markersSkipped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ggmap",
		Name:      "markers_skipped_total",
		Help:      "Markers dropped because their coordinates were unusable",
	})

	registry.MustRegister(httpRequests, httpRequestDuration, containers, fetchDuration, markersSkipped)

	return &Metrics{
		registry:            registry,
		httpRequests:        httpRequests,
		httpRequestDuration: httpRequestDuration,
		containers:          containers,
		fetchDuration:       fetchDuration,
		markersSkipped:      markersSkipped,
	}
}

// ObserveHTTPRequest records a single HTTP request/response cycle.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.httpRequests.With(labels).Inc()
	m.httpRequestDuration.With(labels).Observe(duration.Seconds())
}

// IncContainer counts a processed container.
func (m *Metrics) IncContainer(outcome string) {
	if m == nil {
		return
	}
	m.containers.WithLabelValues(outcome).Inc()
}

// ObserveFetchDuration observes a config fetch, successful or not.
func (m *Metrics) ObserveFetchDuration(duration time.Duration) {
	if m == nil {
		return
	}
	m.fetchDuration.Observe(duration.Seconds())
}

// IncMarkerSkipped counts a marker dropped for bad coordinates.
func (m *Metrics) IncMarkerSkipped() {
	if m == nil {
		return
	}
	m.markersSkipped.Inc()
}

// Handler exposes the Prometheus registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("metrics unavailable"))
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
