package stores

import (
	"context"
	"sync"
	"time"

	"driver-tips/internal/models"

	"github.com/shopspring/decimal"
)

// memoryAggregateStore keeps aggregates in a mutex-guarded map. It provides
// the same atomicity contract as the Redis store (no lost updates,
// first-write-wins createdAt) by serializing increments behind the lock,
// which makes it suitable for tests and local development.
type memoryAggregateStore struct {
	mu   sync.Mutex
	rows map[string]*models.TipAggregate
}

func NewMemoryAggregateStore() AggregateStore {
	return &memoryAggregateStore{rows: make(map[string]*models.TipAggregate)}
}

func (s *memoryAggregateStore) Increment(ctx context.Context, driverID, aggregationKey string, amount decimal.Decimal, now time.Time) error {
	if _, err := amountToMinorUnits(amount); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	key := aggregateKey(driverID, aggregationKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	row, exists := s.rows[key]
	if !exists {
		row = &models.TipAggregate{
			DriverID:       driverID,
			AggregationKey: aggregationKey,
			TotalAmount:    decimal.Zero,
			CreatedAt:      now.UTC(),
		}
		s.rows[key] = row
	}
	row.TotalAmount = row.TotalAmount.Add(amount)
	row.UpdatedAt = now.UTC()

	return nil
}

func (s *memoryAggregateStore) Get(ctx context.Context, driverID, aggregationKey string) (*models.TipAggregate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := aggregateKey(driverID, aggregationKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	row, exists := s.rows[key]
	if !exists {
		return nil, ErrAggregateNotFound
	}

	// Return a copy so callers cannot mutate the stored row.
	copied := *row
	return &copied, nil
}
