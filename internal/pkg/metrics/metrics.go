// Package metrics defines and registers all custom Prometheus metrics for the
// client dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import via
// promauto, so /metrics exposes them alongside the HTTP middleware metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Feed metrics ──────────────────────────────────────────────────────────────

// FeedEventsTotal counts live-ops events recorded into the feed.
// Label:
//   - type: the feed event type (e.g. "job_completed")
var FeedEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_events_total",
		Help:      "Total number of live-ops feed events recorded.",
	},
	[]string{"type"},
)

// FeedErrorsTotal counts feed events the dispatcher failed to record.
var FeedErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_errors_total",
		Help:      "Total number of feed events that failed to record.",
	},
)

// FeedDroppedTotal counts feed events discarded because the dispatcher was
// shutting down.
var FeedDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_dropped_total",
		Help:      "Total number of feed events dropped during shutdown.",
	},
)

// FeedQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var FeedQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Engine metrics ────────────────────────────────────────────────────────────

// QueryDuration measures how long a dashboard query takes inside the service.
// Label:
//   - operation: "list", "kpis", "breakdown"
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of filter, sort and aggregate queries.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	},
	[]string{"operation"},
)

// KPICacheTotal counts shared KPI cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var KPICacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "kpi_cache_total",
		Help:      "Total number of shared KPI cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// StaleHealthScoresTotal counts clients whose stored health score disagrees
// with the live score category.
var StaleHealthScoresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_health_scores_total",
		Help:      "Total number of client views whose stored health score was stale.",
	},
)
