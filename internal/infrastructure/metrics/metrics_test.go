package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/usecase"
)

var _ usecase.MetricsRecorder = (*Metrics)(nil)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewWithRegistry(registry)

	if m.FriendsAdded == nil || m.SplitsApplied == nil || m.SplitRejection == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.FriendAdded()
	m.SplitRejected("bill_required")

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecorderUpdatesMetrics(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.FriendAdded()
	m.FriendAdded()
	m.FriendRemoved()
	m.Friends(4)
	m.SplitApplied("user", decimal.NewFromInt(60))
	m.SplitApplied("friend", decimal.NewFromInt(-20))
	m.SplitApplied("", decimal.NewFromInt(1))
	m.SplitRejected("expense_exceeds_bill")

	if got := testutil.ToFloat64(m.FriendsAdded); got != 2 {
		t.Fatalf("expected 2 friends added, got %v", got)
	}
	if got := testutil.ToFloat64(m.FriendsRemoved); got != 1 {
		t.Fatalf("expected 1 friend removed, got %v", got)
	}
	if got := testutil.ToFloat64(m.FriendsTotal); got != 4 {
		t.Fatalf("expected gauge 4, got %v", got)
	}
	if got := testutil.ToFloat64(m.SplitsApplied.WithLabelValues("friend")); got != 1 {
		t.Fatalf("expected 1 friend-paid split, got %v", got)
	}
	if got := testutil.ToFloat64(m.SplitsApplied.WithLabelValues("direct")); got != 1 {
		t.Fatalf("expected unlabelled split to count as direct, got %v", got)
	}
	if got := testutil.ToFloat64(m.SplitRejection.WithLabelValues("expense_exceeds_bill")); got != 1 {
		t.Fatalf("expected 1 rejection, got %v", got)
	}
}
