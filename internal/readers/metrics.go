package readers

import (
	"access-analytics/internal/shared/metrics"
)

// metricRecordsParsedTotal counts access records successfully parsed out of
// uploaded logs, by log format. Incremented once per fully parsed logfile.
var metricRecordsParsedTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubAnalysis,
		Name:      "records_parsed_total",
	},
	[]string{"log_format"},
)
