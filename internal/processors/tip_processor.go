package processors

import (
	"context"
	"time"

	"driver-tips/internal/models"
	"driver-tips/internal/shared/loggers"
	"driver-tips/internal/shared/metrics"
	"driver-tips/internal/stores"
)

// TipProcessor applies one validated tip event to its day and week buckets.
//
//go:generate mockgen -source=tip_processor.go -destination=./mocks/tip_processor_mock.go -package=mocks
type TipProcessor interface {
	// ApplyTip increments both bucket aggregates for the event. The two
	// increments are independent and order-insensitive; if either fails the
	// event as a whole fails and must be retried by the caller. A transient
	// partial application is acceptable because increments are commutative
	// and the delivery model is at-least-once.
	ApplyTip(ctx context.Context, event *models.TipEvent) error
}

type tipProcessor struct {
	aggregateStore stores.AggregateStore
}

func NewTipProcessor(aggregateStore stores.AggregateStore) TipProcessor {
	return &tipProcessor{aggregateStore: aggregateStore}
}

func (p *tipProcessor) ApplyTip(ctx context.Context, event *models.TipEvent) error {
	logger := loggers.Ctx(ctx)

	// Captured once so both buckets carry the same write timestamp.
	now := time.Now().UTC()
	dayKey := models.DayKey(event.EventTime)
	weekKey := models.WeekKey(event.EventTime)

	logger.Debug().
		Str(loggers.FieldDriverID, event.DriverID).
		Msgf("applying tip of %s to %s and %s", event.Amount, dayKey, weekKey)

	weekErrCh := make(chan error, 1)
	go func() {
		weekErrCh <- p.aggregateStore.Increment(ctx, event.DriverID, weekKey, event.Amount, now)
	}()
	dayErr := p.aggregateStore.Increment(ctx, event.DriverID, dayKey, event.Amount, now)
	weekErr := <-weekErrCh

	if dayErr != nil || weekErr != nil {
		cause := dayErr
		if cause == nil {
			cause = weekErr
		}
		svcErr := errStoreFailed(cause)
		metricTipAppliedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricTipAppliedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}
