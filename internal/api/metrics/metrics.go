// Package metrics defines the custom Prometheus metrics for the enrollment
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "enrollment"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the token authenticator.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during token authentication.",
	},
	[]string{"reason"},
)

// EnrollmentsCreatedTotal counts enrollments added through the API.
var EnrollmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of enrollments created.",
	},
)

// EnrollmentsRemovedTotal counts enrollments removed through the API.
var EnrollmentsRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "removed_total",
		Help:      "Total number of enrollments removed.",
	},
)

// StoreResetsTotal counts reset calls that restored seed data.
var StoreResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_resets_total",
		Help:      "Total number of times the store was reset to seed data.",
	},
)
