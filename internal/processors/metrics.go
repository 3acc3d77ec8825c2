package processors

import (
	"driver-tips/internal/shared/metrics"
)

var (
	metricTipAppliedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "tip_applied_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
