package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Friend metrics
	FriendsAdded   prometheus.Counter
	FriendsRemoved prometheus.Counter
	FriendsTotal   prometheus.Gauge

	// Split metrics
	SplitsApplied  *prometheus.CounterVec
	SplitAmount    *prometheus.HistogramVec
	SplitRejection *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all Prometheus metrics on reg
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FriendsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_friends_added_total",
			Help: "Total number of friends added",
		}),
		FriendsRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_friends_removed_total",
			Help: "Total number of friends removed",
		}),
		FriendsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "splitledger_friends",
			Help: "Current number of friends in the ledger",
		}),

		SplitsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_splits_applied_total",
				Help: "Total number of bill splits applied by payer",
			},
			[]string{"payer"},
		),
		SplitAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "splitledger_split_amount",
				Help:    "Absolute balance change per split",
				Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 10000},
			},
			[]string{"payer"},
		),
		SplitRejection: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_split_rejections_total",
				Help: "Total number of rejected bill splits by reason",
			},
			[]string{"reason"},
		),
	}
}

// FriendAdded implements usecase.MetricsRecorder.
func (m *Metrics) FriendAdded() {
	m.FriendsAdded.Inc()
}

// FriendRemoved implements usecase.MetricsRecorder.
func (m *Metrics) FriendRemoved() {
	m.FriendsRemoved.Inc()
}

// Friends implements usecase.MetricsRecorder.
func (m *Metrics) Friends(count int) {
	m.FriendsTotal.Set(float64(count))
}

// SplitApplied implements usecase.MetricsRecorder.
func (m *Metrics) SplitApplied(payer string, amount decimal.Decimal) {
	if payer == "" {
		payer = "direct"
	}
	m.SplitsApplied.WithLabelValues(payer).Inc()
	m.SplitAmount.WithLabelValues(payer).Observe(amount.Abs().InexactFloat64())
}

// SplitRejected implements usecase.MetricsRecorder.
func (m *Metrics) SplitRejected(reason string) {
	m.SplitRejection.WithLabelValues(reason).Inc()
}
