// Package metrics owns the prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sweetshop"

// Checkout outcomes recorded by ObserveCheckout.
const (
	OutcomePlaced      = "placed"
	OutcomeOutOfStock  = "out_of_stock"
	OutcomeRateLimited = "rate_limited"
	OutcomeCancelled   = "cancelled"
	OutcomeFailed      = "failed"
)

// Metrics groups the service collectors behind a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	Checkouts *prometheus.CounterVec
	UnitsSold prometheus.Counter
}

// New builds and registers every collector on a fresh registry.
func New(service string) *Metrics {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "checkouts_total",
		Help:      "Place-order attempts by outcome.",
	}, []string{"outcome"})
	sold := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "units_sold_total",
		Help:      "Units debited from stock by placed orders.",
	})

	reg.MustRegister(
		requests, latency, checkouts, sold,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:  reg,
		Requests:  requests,
		LatencyMS: latency,
		Checkouts: checkouts,
		UnitsSold: sold,
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(handler string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(handler).Observe(float64(elapsed.Milliseconds()))
}

// ObserveCheckout records a place-order outcome. units is only counted for OutcomePlaced.
func (m *Metrics) ObserveCheckout(outcome string, units int) {
	if m == nil {
		return
	}
	m.Checkouts.WithLabelValues(outcome).Inc()
	if outcome == OutcomePlaced && units > 0 {
		m.UnitsSold.Add(float64(units))
	}
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
