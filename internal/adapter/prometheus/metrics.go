package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

const namespace = "salon"

type PrometheusAdapter struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	carActions *prometheus.CounterVec
}

var _ ports.MetricsPort = (*PrometheusAdapter)(nil)

// NewPrometheusAdapter registers its collectors with reg.
func NewPrometheusAdapter(reg prometheus.Registerer) *PrometheusAdapter {
	p := &PrometheusAdapter{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"method", "path"},
		),
		carActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cars",
				Name:      "actions_total",
				Help:      "Car lifecycle actions by outcome.",
			},
			[]string{"action", "outcome"},
		),
	}
	reg.MustRegister(p.requests, p.duration, p.carActions)
	return p
}

// RecordMetrics labels by the route template so ids do not explode cardinality.
func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	method := c.Request.Method
	status := strconv.Itoa(c.Writer.Status())

	p.requests.WithLabelValues(method, path, status).Inc()
	p.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordCarAction(action, outcome string) {
	p.carActions.WithLabelValues(action, outcome).Inc()
}
