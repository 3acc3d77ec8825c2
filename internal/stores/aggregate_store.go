package stores

import (
	"context"
	"errors"
	"time"

	"driver-tips/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrAggregateNotFound is returned by Get when no increment has ever
	// landed in the requested bucket. This is a valid state, not a failure.
	ErrAggregateNotFound = errors.New("tip aggregate not found")

	// ErrStoreUnavailable marks transient infrastructure failures.
	// Callers may retry the whole unit of work.
	ErrStoreUnavailable = errors.New("aggregate store unavailable")

	// ErrStoreThrottled marks capacity or throttling rejections.
	// Callers should back off and retry, not treat the write as lost.
	ErrStoreThrottled = errors.New("aggregate store throttled")

	// ErrAmountNotRepresentable is returned when an amount cannot be stored
	// exactly in minor units (more than two fractional digits).
	ErrAmountNotRepresentable = errors.New("amount not representable in minor units")
)

// AggregateStore is the durable counter storage keyed by
// (driverID, aggregationKey).
//
// Increment atomically adds amount to the existing total (absence counts as
// zero), sets updatedAt = now unconditionally and createdAt = now only if the
// row did not previously exist. Implementations must be safe under unbounded
// concurrent callers incrementing the same key: no lost updates, no
// read-modify-write races, and no coordination required between callers.
//
//go:generate mockgen -source=aggregate_store.go -destination=./mocks/aggregate_store_mock.go -package=mocks
type AggregateStore interface {
	Increment(ctx context.Context, driverID, aggregationKey string, amount decimal.Decimal, now time.Time) error
	Get(ctx context.Context, driverID, aggregationKey string) (*models.TipAggregate, error)
}
