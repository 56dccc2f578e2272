package ingestors

import (
	"access-analytics/internal/shared/metrics"
)

// metricLogIngestedTotal counts log uploads by outcome. The error_code label
// is empty on success, or holds the stable service error code (ING_1001 for
// idempotency-key replays) otherwise.
var metricLogIngestedTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubIngestion,
		Name:      "log_ingested_total",
	},
	[]string{metrics.FieldErrorCode},
)
