package queries

import (
	"driver-tips/internal/shared/metrics"
)

var (
	metricDriverCreatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "driver_created_total",
		},
	)
)
