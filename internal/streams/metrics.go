package streams

import (
	"access-analytics/internal/shared/metrics"
)

var (
	streamAnalysisRequest = "analysis_request"

	metricAnalysisRequestProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "analysis_request_published_total",
		},
		[]string{"stream_id"},
	)

	metricAnalysisRequestConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "analysis_request_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
