// Package metrics defines and registers all custom Prometheus metrics for
// the investor portal gateway. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Upstream API metrics ─────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the upstream CMS API.
// Labels:
//   - op: logical operation name (e.g. "login", "list_posts")
//   - status: HTTP status code, or "unreachable" when no response arrived
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream API calls, by operation and outcome.",
	},
	[]string{"op", "status"},
)

// UpstreamRequestDuration measures upstream call latency per operation.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream API calls from dispatch to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Session gate metrics ─────────────────────────────────────────────────────

// GateDecisionsTotal counts gate outcomes on protected routes.
// Label:
//   - decision: "authorized", "redirect_login", or "redirect_area"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of session gate evaluations, by decision.",
	},
	[]string{"decision"},
)

// ReconciliationsTotal counts server-truth refreshes of cached sessions.
// Label:
//   - result: "refreshed" or "stale" (refresh failed, cached copy served)
var ReconciliationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconciliations_total",
		Help:      "Total number of session reconciliations against upstream, by result.",
	},
	[]string{"result"},
)

// SessionsStartedTotal counts new sessions by entry point ("login" or
// "register").
var SessionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of sessions created, by entry point.",
	},
	[]string{"via"},
)

// SessionsEndedTotal counts explicit sign-outs.
var SessionsEndedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Total number of sessions cleared by logout.",
	},
)

// ── Public content cache metrics ─────────────────────────────────────────────

// CacheLookupsTotal counts public cache decisions.
// Label:
//   - result: "hit", "miss", or "discard" (response lost the refresh race)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of public content cache lookups, by result.",
	},
	[]string{"result"},
)
