// Package metrics exposes Prometheus counters for the login flows
package metrics

import (
	"net/http" // HTTP handler type

	"github.com/prometheus/client_golang/prometheus"            // Prometheus client
	"github.com/prometheus/client_golang/prometheus/collectors" // Go and process collectors
	"github.com/prometheus/client_golang/prometheus/promhttp"   // Exposition handler
)

// Login outcomes
const (
	OutcomeSuccess = "success" // Session established
	OutcomeInvalid = "invalid" // Bad credentials or blocked account
	OutcomePending = "pending" // Vendor awaiting approval
	OutcomeError   = "error"   // Infrastructure failure
)

// Metrics holds the service counters. A nil *Metrics records nothing.
type Metrics struct {
	LoginAttempts      *prometheus.CounterVec // By guard and outcome
	Logouts            *prometheus.CounterVec // By guard
	WalletsProvisioned prometheus.Counter     // Wallets created at first login
}

// New creates and registers the counters on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_login_attempts_total",
				Help: "Total number of login attempts by guard and outcome",
			},
			[]string{"guard", "outcome"},
		),
		Logouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_logouts_total",
				Help: "Total number of logouts by guard",
			},
			[]string{"guard"},
		),
		WalletsProvisioned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_vendor_wallets_provisioned_total",
				Help: "Total number of vendor wallets created on first login",
			},
		),
	}

	reg.MustRegister(m.LoginAttempts)      // Register login counter
	reg.MustRegister(m.Logouts)            // Register logout counter
	reg.MustRegister(m.WalletsProvisioned) // Register wallet counter

	return m
}

// NewRegistry returns a registry with the Go and process collectors plus the service counters
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()                                                     // Private registry
	reg.MustRegister(collectors.NewGoCollector())                                       // Runtime stats
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})) // Process stats
	return reg, New(reg)
}

// Handler serves the registry in the Prometheus text format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveLogin counts one login attempt
func (m *Metrics) ObserveLogin(guard, outcome string) {
	if m == nil {
		return // Metrics disabled
	}
	m.LoginAttempts.WithLabelValues(guard, outcome).Inc()
}

// ObserveLogout counts one logout
func (m *Metrics) ObserveLogout(guard string) {
	if m == nil {
		return // Metrics disabled
	}
	m.Logouts.WithLabelValues(guard).Inc()
}

// ObserveWalletProvisioned counts one wallet created at first login
func (m *Metrics) ObserveWalletProvisioned() {
	if m == nil {
		return // Metrics disabled
	}
	m.WalletsProvisioned.Inc()
}
