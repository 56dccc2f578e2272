package reports

import (
	"access-analytics/internal/shared/metrics"
)

// metricAnalysisCompletedTotal counts fully analyzed logs by log format.
// It is incremented once per completed analysis, after the report has been
// stored; re-analyzing the same log counts again.
var metricAnalysisCompletedTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubAnalysis,
		Name:      "analysis_completed_total",
	},
	[]string{"log_format"},
)
