// Package metrics defines the custom Prometheus metrics of the wishlist
// application. They are registered with the default registry on import;
// request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wishlist"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok" or the rejection reason (e.g. "password_too_short", "user_exists")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Wishlist metrics ──────────────────────────────────────────────────────────

// ItemOperationsTotal counts wishlist mutations.
// Labels:
//   - operation: "add", "copy" or "remove"
//   - result: "ok" or the rejection reason (e.g. "forbidden", "already_in_wishlist")
var ItemOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_operations_total",
		Help:      "Total number of wishlist item operations, by operation and result.",
	},
	[]string{"operation", "result"},
)
