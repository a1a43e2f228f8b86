package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cheque_frontend"

// Collector records frontend and backend-call metrics using Prometheus
type Collector struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	backendRequests     *prometheus.CounterVec
	backendDuration     *prometheus.HistogramVec
	chequeActions       *prometheus.CounterVec
	backendUp           prometheus.Gauge
}

// NewCollector creates a new Prometheus metrics collector registered on reg.
// A nil reg registers on the default Prometheus registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backend_requests_total",
				Help:      "Total number of calls made to the cheque backend",
			},
			[]string{"operation", "outcome"},
		),
		backendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "backend_request_duration_seconds",
				Help:      "Cheque backend call latency in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"operation"},
		),
		chequeActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cheque_actions_total",
				Help:      "Total number of cheque add/delete actions submitted",
			},
			[]string{"action"},
		),
		backendUp: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "backend_up",
				Help:      "1 if the last backend probe succeeded, 0 otherwise",
			},
		),
	}
}

// ObserveRequest records a served HTTP request
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackendCall records the outcome and latency of a backend call
func (c *Collector) ObserveBackendCall(operation, outcome string, duration time.Duration) {
	c.backendRequests.WithLabelValues(operation, outcome).Inc()
	c.backendDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncChequeAction increments the count of submitted cheque actions
func (c *Collector) IncChequeAction(action string) {
	c.chequeActions.WithLabelValues(action).Inc()
}

// SetBackendUp records the result of the latest backend probe
func (c *Collector) SetBackendUp(up bool) {
	if up {
		c.backendUp.Set(1)
		return
	}
	c.backendUp.Set(0)
}
