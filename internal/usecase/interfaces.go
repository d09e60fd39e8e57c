package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// MetricsRecorder receives ledger activity for instrumentation.
type MetricsRecorder interface {
	FriendAdded()
	FriendRemoved()
	SplitApplied(payer string, amount decimal.Decimal)
	SplitRejected(reason string)
	Friends(count int)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claim so the key can be retried.
	Release(ctx context.Context, key string) error
}

type noopMetrics struct{}

func (noopMetrics) FriendAdded()                         {}
func (noopMetrics) FriendRemoved()                       {}
func (noopMetrics) SplitApplied(string, decimal.Decimal) {}
func (noopMetrics) SplitRejected(string)                 {}
func (noopMetrics) Friends(int)                          {}
