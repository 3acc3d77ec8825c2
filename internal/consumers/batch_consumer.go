package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"driver-tips/internal/events"
	"driver-tips/internal/models"
	"driver-tips/internal/processors"
	"driver-tips/internal/shared/loggers"
	"driver-tips/internal/shared/metrics"
	"driver-tips/internal/shared/svcerrors"
	"driver-tips/internal/shared/validators"
)

// Record is one inbound delivery: an opaque identifier assigned by the
// delivery system plus the raw payload.
type Record struct {
	ID   string
	Body []byte
}

// ItemFailure identifies one record that must be redelivered.
type ItemFailure struct {
	ItemIdentifier string `json:"itemIdentifier"`
}

// BatchConsumer drives a bounded batch of inbound tip events through the
// processor. Each item is an isolated failure domain: a parse error,
// validation error, processing failure, or panic in one item never aborts or
// affects the others. The returned failures tell the delivery system which
// items to redeliver; an empty result means full batch success.
//
//go:generate mockgen -source=batch_consumer.go -destination=./mocks/batch_consumer_mock.go -package=mocks
type BatchConsumer interface {
	ProcessBatch(ctx context.Context, records []Record) []ItemFailure
}

type batchConsumer struct {
	tipProcessor processors.TipProcessor
	validate     *validators.Validate
}

func NewBatchConsumer(tipProcessor processors.TipProcessor) BatchConsumer {
	return &batchConsumer{
		tipProcessor: tipProcessor,
		validate:     validators.New(),
	}
}

func (c *batchConsumer) ProcessBatch(ctx context.Context, records []Record) []ItemFailure {
	// Indexed by position so the failure report is deterministic even though
	// items run in parallel.
	results := make([]*ItemFailure, len(records))

	var wg sync.WaitGroup
	for i, record := range records {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if failed := c.consumeRecord(ctx, record); failed {
				results[i] = &ItemFailure{ItemIdentifier: record.ID}
			}
		}()
	}
	wg.Wait()

	failures := make([]ItemFailure, 0, len(records))
	for _, result := range results {
		if result != nil {
			failures = append(failures, *result)
		}
	}
	return failures
}

// consumeRecord runs the parse -> validate -> apply pipeline for one record
// and reports whether the record failed. Panics count as failures too so a
// poisoned payload cannot take the worker down.
func (c *batchConsumer) consumeRecord(ctx context.Context, record Record) (failed bool) {
	logger := loggers.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Str(loggers.FieldItemID, record.ID).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("consumer panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricBatchItemConsumedTotal.WithLabelValues(svcErr.Code).Inc()
			failed = true
		}
	}()

	event, err := c.parseAndValidate(record.Body)
	if err == nil {
		err = c.tipProcessor.ApplyTip(ctx, event)
	}
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		logger.Debug().
			Str(loggers.FieldItemID, record.ID).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("batch item failed")
		metricBatchItemConsumedTotal.WithLabelValues(svcErr.Code).Inc()
		return true
	}

	metricBatchItemConsumedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return false
}

func (c *batchConsumer) parseAndValidate(body []byte) (*models.TipEvent, error) {
	var payload events.TipEventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errParseFailed(err)
	}

	payload.DriverID = strings.TrimSpace(payload.DriverID)
	if err := c.validate.Struct(&payload); err != nil {
		return nil, errValidationFailed("driverId and eventTime are required", err)
	}
	if payload.Amount.Sign() <= 0 {
		return nil, errValidationFailed(fmt.Sprintf("amount must be positive, got %s", payload.Amount), nil)
	}
	if !payload.Amount.Shift(2).IsInteger() {
		return nil, errValidationFailed(fmt.Sprintf("amount must have at most two fractional digits, got %s", payload.Amount), nil)
	}

	eventTime, err := parseEventTime(payload.EventTime)
	if err != nil {
		return nil, err
	}

	return &models.TipEvent{
		DriverID:  payload.DriverID,
		Amount:    payload.Amount,
		EventTime: eventTime,
	}, nil
}

// parseEventTime parses an ISO-8601 timestamp with or without fractional
// seconds.
func parseEventTime(timeStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04:05.000Z", timeStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	return time.Time{}, errValidationFailed(fmt.Sprintf("invalid eventTime format: %s", timeStr), nil)
}
