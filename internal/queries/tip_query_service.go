package queries

import (
	"context"
	"errors"
	"time"

	"driver-tips/internal/models"
	"driver-tips/internal/shared/loggers"
	"driver-tips/internal/stores"
)

// DriverTips holds the current day and week aggregates for one driver.
// Either may be nil when no tip has landed in that bucket yet; that is a
// valid state, not an error.
type DriverTips struct {
	Daily  *models.TipAggregate
	Weekly *models.TipAggregate
}

//go:generate mockgen -source=tip_query_service.go -destination=./mocks/tip_query_service_mock.go -package=mocks
type TipQueryService interface {
	// GetDriverTips returns the aggregates for the buckets that contain now.
	// Fails with a not_found error if the driver does not exist.
	GetDriverTips(ctx context.Context, driverID string, now time.Time) (*DriverTips, error)
}

type tipQueryService struct {
	driverStore    stores.DriverStore
	aggregateStore stores.AggregateStore
}

func NewTipQueryService(driverStore stores.DriverStore, aggregateStore stores.AggregateStore) TipQueryService {
	return &tipQueryService{driverStore: driverStore, aggregateStore: aggregateStore}
}

func (s *tipQueryService) GetDriverTips(ctx context.Context, driverID string, now time.Time) (*DriverTips, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldDriverID, driverID).Msg("started driver tips lookup")

	if _, err := s.driverStore.Get(ctx, driverID); err != nil {
		if errors.Is(err, stores.ErrDriverNotFound) {
			return nil, errDriverNotFound(err)
		}
		return nil, errInternalDriverStoreFailed(err)
	}

	dayKey := models.DayKey(now)
	weekKey := models.WeekKey(now)

	type fetchResult struct {
		aggregate *models.TipAggregate
		err       error
	}
	weekCh := make(chan fetchResult, 1)
	go func() {
		aggregate, err := s.fetchAggregate(ctx, driverID, weekKey)
		weekCh <- fetchResult{aggregate: aggregate, err: err}
	}()

	daily, dayErr := s.fetchAggregate(ctx, driverID, dayKey)
	week := <-weekCh

	if dayErr != nil {
		return nil, dayErr
	}
	if week.err != nil {
		return nil, week.err
	}

	return &DriverTips{Daily: daily, Weekly: week.aggregate}, nil
}

// fetchAggregate treats an absent bucket as a nil aggregate rather than an
// error.
func (s *tipQueryService) fetchAggregate(ctx context.Context, driverID, aggregationKey string) (*models.TipAggregate, error) {
	aggregate, err := s.aggregateStore.Get(ctx, driverID, aggregationKey)
	if err != nil {
		if errors.Is(err, stores.ErrAggregateNotFound) {
			return nil, nil
		}
		return nil, errAggregateStoreFailed(err)
	}
	return aggregate, nil
}
