// Package metrics defines and registers the custom Prometheus metrics of the
// storefront API. HTTP request metrics come from the echo middleware; this
// package only holds business-level series.
//
// All metrics live in the default Prometheus registry and are registered at
// package init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "revesshop"

// ── Account metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successful signups.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductWritesTotal counts catalog mutations.
// Labels:
//   - op: "create", "update" or "delete"
//   - result: "ok", "not_found", "replayed" or "error"
var ProductWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_writes_total",
		Help:      "Total number of catalog writes, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Exchange-rate metrics ─────────────────────────────────────────────────────

// ExchangeRequestsTotal counts outbound calls to the exchange-rate provider.
// Label:
//   - outcome: "ok", "upstream_error", "malformed" or "timeout"
var ExchangeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exchange_requests_total",
		Help:      "Total number of exchange-rate provider calls, by outcome.",
	},
	[]string{"outcome"},
)

// ExchangeRequestDuration measures the latency of provider calls.
var ExchangeRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "exchange_request_duration_seconds",
		Help:      "Latency of exchange-rate provider calls.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2, 4, 8},
	},
)
