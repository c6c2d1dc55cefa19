package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Redirect outcomes for the tracking link counter
const (
	RedirectLine     = "line"
	RedirectFallback = "fallback"
)

// Metrics holds the Prometheus collectors exposed on /metrics. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	redirects       *prometheus.CounterVec
	webhookEvents   *prometheus.CounterVec
}

// NewMetrics registers collectors on a private registry so tests can build
// as many instances as they need
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ltrack_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ltrack_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route"}),
		redirects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ltrack_tracking_redirects_total",
			Help: "Tracking link redirects by outcome",
		}, []string{"outcome"}),
		webhookEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ltrack_webhook_events_total",
			Help: "LINE webhook events by endpoint and stage",
		}, []string{"endpoint", "stage"}),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (m *Metrics) RecordRedirect(outcome string) {
	if m == nil {
		return
	}
	m.redirects.WithLabelValues(outcome).Inc()
}

// RecordWebhookEvents counts events received in a delivery and those processed without error
func (m *Metrics) RecordWebhookEvents(endpoint string, received, processed int) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(endpoint, "received").Add(float64(received))
	m.webhookEvents.WithLabelValues(endpoint, "processed").Add(float64(processed))
}
