package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks calculations, entitlement checks, moderation and request
// latency. A nil *Metrics records nothing.
type Metrics struct {
	Calculations    prometheus.Counter
	AccessChecks    *prometheus.CounterVec
	PaymentRequests *prometheus.CounterVec
	Exports         prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New registers all metrics with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calculations: factory.NewCounter(prometheus.CounterOpts{
			Name: "destiny_calculations_total",
			Help: "Total number of matrix calculations",
		}),
		AccessChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "destiny_access_checks_total",
			Help: "Total number of entitlement checks by result",
		}, []string{"result"}),
		PaymentRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "destiny_payment_requests_total",
			Help: "Payment requests by status transition",
		}, []string{"status"}),
		Exports: factory.NewCounter(prometheus.CounterOpts{
			Name: "destiny_exports_total",
			Help: "Total number of exported reports",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "destiny_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementCalculations() {
	if m == nil {
		return
	}
	m.Calculations.Inc()
}

// ObserveAccessCheck records one check; result is granted, denied or error.
func (m *Metrics) ObserveAccessCheck(result string) {
	if m == nil {
		return
	}
	m.AccessChecks.WithLabelValues(result).Inc()
}

func (m *Metrics) ObservePaymentRequest(status string) {
	if m == nil {
		return
	}
	m.PaymentRequests.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementExports() {
	if m == nil {
		return
	}
	m.Exports.Inc()
}

// Middleware observes the latency of every request by matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		route := c.Route().Path
		m.RequestDuration.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
		return err
	}
}
