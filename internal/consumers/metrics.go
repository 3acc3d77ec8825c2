package consumers

import (
	"driver-tips/internal/shared/metrics"
)

var (
	metricBatchItemConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubConsumer,
			Name:      "batch_item_consumed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBatchRedeliveredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubConsumer,
			Name:      "batch_item_redelivered_total",
		},
		[]string{"topic"},
	)
)
