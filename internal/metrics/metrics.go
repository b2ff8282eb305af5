package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	fetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mm_admin",
			Name:      "table_fetches_total",
			Help:      "List fetches by entity and outcome.",
		},
		[]string{"entity", "outcome"},
	)

	actions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mm_admin",
			Name:      "actions_total",
			Help:      "Dispatched row actions by entity, action and outcome.",
		},
		[]string{"entity", "action", "outcome"},
	)

	exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mm_admin",
			Name:      "exports_total",
			Help:      "Completed exports by entity.",
		},
		[]string{"entity"},
	)

	apiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mm_admin",
			Name:      "api_request_duration_seconds",
			Help:      "Admin API round-trip duration by method and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(fetches, actions, exports, apiDuration)
	})
}

// IncFetch counts one list fetch outcome ("success" or "error").
func IncFetch(entity, outcome string) {
	fetches.WithLabelValues(entity, outcome).Inc()
}

// IncAction counts one dispatched action outcome.
func IncAction(entity, action, outcome string) {
	actions.WithLabelValues(entity, action, outcome).Inc()
}

// IncExport counts one completed export.
func IncExport(entity string) {
	exports.WithLabelValues(entity).Inc()
}

// ObserveAPIRequest records one API round trip.
func ObserveAPIRequest(method string, status int, d time.Duration) {
	apiDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}
