package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger's Prometheus metrics.
type Metrics struct {
	// Transfer metrics
	TransfersCommitted prometheus.Counter
	TransferErrors     *prometheus.CounterVec
	TransferDuration   prometheus.Histogram

	// Account metrics
	AccountsCreated prometheus.Counter
	BalanceQueries  prometheus.Counter
}

// New creates all metrics and registers them with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics against the given registerer. Tests pass their
// own registry so repeated construction does not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransfersCommitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "doubleentry_transfers_committed_total",
			Help: "Total number of committed transfers",
		}),
		TransferErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doubleentry_transfer_errors_total",
				Help: "Total number of rejected transfers by error kind",
			},
			[]string{"kind"},
		),
		TransferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "doubleentry_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "doubleentry_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		BalanceQueries: factory.NewCounter(prometheus.CounterOpts{
			Name: "doubleentry_balance_queries_total",
			Help: "Total number of balance queries",
		}),
	}
}
