package stores

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"driver-tips/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	fieldTotalMinor = "totalMinor"
	fieldCreatedAt  = "createdAt"
	fieldUpdatedAt  = "updatedAt"
)

// incrementScript adds the amount (in minor units) to the bucket total, sets
// createdAt only when the hash field is still absent, and always moves
// updatedAt. Redis executes the whole script atomically, so concurrent
// callers on the same key cannot lose updates or race on createdAt.
var incrementScript = redis.NewScript(`
redis.call('HINCRBY', KEYS[1], 'totalMinor', ARGV[1])
redis.call('HSETNX', KEYS[1], 'createdAt', ARGV[2])
redis.call('HSET', KEYS[1], 'updatedAt', ARGV[2])
return 1
`)

type redisAggregateStore struct {
	client *redis.Client
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// NewRedisAggregateStore creates an AggregateStore backed by Redis hashes.
// Each (driver, bucket) pair maps to one hash whose fields mirror the
// persisted record contract: totalMinor, createdAt, updatedAt.
func NewRedisAggregateStore(client *redis.Client) AggregateStore {
	return &redisAggregateStore{client: client}
}

func (s *redisAggregateStore) Increment(ctx context.Context, driverID, aggregationKey string, amount decimal.Decimal, now time.Time) error {
	minor, err := amountToMinorUnits(amount)
	if err != nil {
		return err
	}

	key := aggregateKey(driverID, aggregationKey)
	nowStr := now.UTC().Format(time.RFC3339Nano)

	if err := incrementScript.Run(ctx, s.client, []string{key}, minor, nowStr).Err(); err != nil {
		return mapRedisError(err)
	}
	return nil
}

func (s *redisAggregateStore) Get(ctx context.Context, driverID, aggregationKey string) (*models.TipAggregate, error) {
	key := aggregateKey(driverID, aggregationKey)

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, mapRedisError(err)
	}
	if len(fields) == 0 {
		return nil, ErrAggregateNotFound
	}

	minor, err := strconv.ParseInt(fields[fieldTotalMinor], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse total for %s: %w", key, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("failed to parse createdAt for %s: %w", key, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt])
	if err != nil {
		return nil, fmt.Errorf("failed to parse updatedAt for %s: %w", key, err)
	}

	return &models.TipAggregate{
		DriverID:       driverID,
		AggregationKey: aggregationKey,
		TotalAmount:    decimal.New(minor, -2),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// aggregateKey builds the storage key from the partition identity
// DRIVER#<driverId> and the bucket string as the secondary identity.
func aggregateKey(driverID, aggregationKey string) string {
	return fmt.Sprintf("tips:DRIVER#%s:%s", driverID, aggregationKey)
}

// amountToMinorUnits converts a currency amount to integer minor units so the
// stored total is an exact integer counter.
func amountToMinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrAmountNotRepresentable, amount.String())
	}
	return minor.IntPart(), nil
}

// mapRedisError classifies redis failures into the store's retryable
// sentinels. BUSY/LOADING/OOM replies mean the server rejected the write for
// capacity reasons; anything else transient (network, timeout) is
// unavailability.
func mapRedisError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return ErrAggregateNotFound
	}

	msg := err.Error()
	for _, prefix := range []string{"BUSY", "LOADING", "OOM", "MAXMEMORY"} {
		if strings.HasPrefix(msg, prefix) {
			return fmt.Errorf("%w: %s", ErrStoreThrottled, msg)
		}
	}
	return fmt.Errorf("%w: %s", ErrStoreUnavailable, msg)
}
