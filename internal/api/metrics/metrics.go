// Package metrics defines and registers the custom Prometheus metrics of the
// band site API. HTTP request metrics come from echoprometheus; this package
// only holds what that middleware cannot see.
//
// All metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bandsite"

// ── Gates ─────────────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the authentication and
// authorization gates.
// Label:
//   - reason: "missing_header", "bad_scheme", "token_invalid", "token_expired",
//     "no_claim", "role_denied"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth gates.",
	},
	[]string{"reason"},
)

// RateLimitedTotal counts requests refused by the rate limiter.
// Label:
//   - scope: the limited route group (e.g. "login", "contact")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests refused by the rate limiter.",
	},
	[]string{"scope"},
)

// RateLimiterErrorsTotal counts requests let through because the limiter
// backend failed.
// Label:
//   - scope: the limited route group
var RateLimiterErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limiter_errors_total",
		Help:      "Total number of requests allowed because the rate limiter failed.",
	},
	[]string{"scope"},
)

// ── Errors ────────────────────────────────────────────────────────────────────

// ErrorsTotal counts error responses produced by the error handler.
// Label:
//   - kind: the normalized error kind (e.g. "conflict", "server_error")
var ErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "Total number of error responses, by normalized kind.",
	},
	[]string{"kind"},
)

// ── Media ─────────────────────────────────────────────────────────────────────

// UploadsTotal counts image uploads.
// Label:
//   - result: "ok" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image uploads, by result.",
	},
	[]string{"result"},
)

// MediaCleanupTotal counts remote asset deletions.
// Label:
//   - result: "ok", "error" or "dropped" (queue full)
var MediaCleanupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_cleanup_total",
		Help:      "Total number of remote media deletions, by result.",
	},
	[]string{"result"},
)

// MediaCleanupQueueDepth tracks pending deletions per worker.
// Label:
//   - worker_id: numeric worker index
var MediaCleanupQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "media_cleanup_queue_depth",
		Help:      "Current number of deletions pending in each cleanup worker channel.",
	},
	[]string{"worker_id"},
)
