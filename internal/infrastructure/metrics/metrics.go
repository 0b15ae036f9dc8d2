package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Metrics holds the Prometheus counters for one processing run. They live on
// a private registry: a run-once process has no scrape endpoint, so the
// counters are gathered and logged when the run finishes.
type Metrics struct {
	registry *prometheus.Registry

	// Event metrics
	EventsProcessed *prometheus.CounterVec
	EventsRejected  *prometheus.CounterVec
	RecordsSkipped  prometheus.Counter

	// Account metrics
	AccountsCreated prometheus.Counter

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		EventsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payengine_events_processed_total",
			Help: "Events applied successfully, by event type",
		}, []string{"type"}),
		EventsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payengine_events_rejected_total",
			Help: "Events rejected by a business rule, by reason",
		}, []string{"reason"}),
		RecordsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_records_skipped_total",
			Help: "Input records skipped because they could not be parsed",
		}),

		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_created_total",
			Help: "Client accounts created lazily on first reference",
		}),

		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_tx_cache_hits_total",
			Help: "Transaction lookups served from the LRU cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_tx_cache_misses_total",
			Help: "Transaction lookups that fell through to the store",
		}),
	}
}

// Rejection reasons used with EventsRejected.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonAccountLocked     = "account_locked"
	ReasonNotFound          = "not_found"
	ReasonWrongState        = "wrong_state"
)

// Dump gathers every metric on the registry and writes it to the log at
// debug level.
func (m *Metrics) Dump(logger zerolog.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to gather metrics")
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			event := logger.Debug().Str("metric", family.GetName())
			for _, label := range metric.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("value", metric.GetCounter().GetValue()).Msg("run metric")
		}
	}
}
