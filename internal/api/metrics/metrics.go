// Package metrics defines and registers all custom Prometheus metrics for the
// HR API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time; the
// /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// LoginsTotal counts credential exchanges.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecordMutationsTotal counts successful domain record mutations.
// Labels:
//   - entity: "employee", "attendance", "leave", "settings"
//   - action: "create", "update", "delete", "apply", "cancel"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful record mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// PortalReadsTotal counts employee self-service reads.
// Label:
//   - resource: "profile", "attendance", "leave"
var PortalReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "portal_reads_total",
		Help:      "Total number of employee portal reads, by resource.",
	},
	[]string{"resource"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth middleware.
// Label:
//   - reason: "missing", "malformed", "invalid", "revoked"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)
