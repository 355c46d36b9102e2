// Package metrics defines and registers the custom Prometheus metrics of the
// web-store API. HTTP request metrics come from echoprometheus; this package
// only holds the domain counters.
//
// All metrics register with the default registry through promauto, so they
// are served by the same /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "webstore"

// ── Auth metrics ─────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthorizationDenialsTotal counts requests rejected by the route guard.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Total number of requests denied by the route guard.",
	},
	[]string{"reason"},
)

// ── Entity metrics ───────────────────────────────────────────────────────────

// EntityMutationsTotal counts successful writes.
// Labels:
//   - entity: "user", "role", "product", "order", "order_item"
//   - op: "create", "update" or "delete"
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of successful entity mutations.",
	},
	[]string{"entity", "op"},
)

// Mutation operation label values.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordMutation increments EntityMutationsTotal for entity and op.
func RecordMutation(entity, op string) {
	EntityMutationsTotal.WithLabelValues(entity, op).Inc()
}
