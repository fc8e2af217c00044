// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeResult   = "result"
	OutcomeNoResult = "no_result"
	OutcomeInvalid  = "invalid"
)

// Metrics bundles the collectors so tests can use a private registry.
type Metrics struct {
	Calculations *prometheus.CounterVec
	RequiredDays prometheus.Histogram
	HTTPRequests *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Calculations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worthit_calculations_total",
				Help: "Affordability calculations by outcome.",
			},
			[]string{"outcome"},
		),
		RequiredDays: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "worthit_required_days",
				Help:    "Working days required per successful calculation.",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 50, 100, 250, 500},
			},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worthit_http_requests_total",
				Help: "HTTP requests by route and status code.",
			},
			[]string{"method", "route", "status"},
		),
	}
}
