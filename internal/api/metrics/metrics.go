// Package metrics defines the custom Prometheus metrics for the ticketing
// API identity core. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketing"

// SignupsTotal counts completed signups.
// Label:
//   - role: "organizer" or "attendee"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by role.",
	},
	[]string{"role"},
)

// SignupConflictsTotal counts signups rejected by a uniqueness conflict.
// Label:
//   - field: violated field ("email", "gov_identification", "unknown")
var SignupConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_conflicts_total",
		Help:      "Total number of signups rejected because a unique field was taken.",
	},
	[]string{"field"},
)

// TokensIssuedTotal counts session tokens minted for new signups.
// Label:
//   - role: role embedded in the token
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued, by role.",
	},
	[]string{"role"},
)

// AuthRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_header", "bad_scheme", "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected before the handler, by reason.",
	},
	[]string{"reason"},
)

// SignupDuration measures signup handling end-to-end, hashing included.
// Label:
//   - role: "organizer" or "attendee"
var SignupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "signup_duration_seconds",
		Help:      "Duration of signup processing from bind to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"role"},
)
