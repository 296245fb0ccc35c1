package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prediction outcomes recorded by ObservePrediction.
const (
	OutcomeSuccess      = "success"
	OutcomeValidation   = "validation_error"
	OutcomeInvalidInput = "invalid_input"
	OutcomeNotLoaded    = "not_loaded"
	OutcomeError        = "error"
)

const (
	namespace      = "house_price"
	unmatchedRoute = "unmatched"
)

// Metrics owns the Prometheus collectors of one binary. Each instance has its own
// registry so several can coexist in one process.
type Metrics struct {
	registry    *prometheus.Registry
	reqTotal    *prometheus.CounterVec
	reqDur      *prometheus.HistogramVec
	predictions *prometheus.CounterVec
	modelLoaded prometheus.Gauge
}

// NewMetrics creates the collectors under the given subsystem, e.g. "webapp" or "api".
func NewMetrics(subsystem string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem, Name: "http_requests_total", Help: "HTTP requests"},
			[]string{"method", "path", "status"},
		),
		reqDur: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Subsystem: subsystem, Name: "http_request_duration_seconds", Help: "HTTP request latency", Buckets: []float64{0.005, 0.02, 0.1, 0.3, 1, 2, 5}},
			[]string{"method", "path"},
		),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: subsystem, Name: "predictions_total", Help: "Prediction requests by outcome"},
			[]string{"outcome"},
		),
		modelLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Subsystem: subsystem, Name: "model_loaded", Help: "1 when the model artifacts are loaded"},
		),
	}
	m.registry.MustRegister(
		m.reqTotal, m.reqDur, m.predictions, m.modelLoaded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware counts requests and their latency by route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		method := c.Request.Method
		m.reqTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.reqDur.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// ObservePrediction counts one prediction attempt.
func (m *Metrics) ObservePrediction(outcome string) {
	m.predictions.WithLabelValues(outcome).Inc()
}

// SetModelLoaded publishes the artifact load state.
func (m *Metrics) SetModelLoaded(loaded bool) {
	if loaded {
		m.modelLoaded.Set(1)
		return
	}
	m.modelLoaded.Set(0)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
