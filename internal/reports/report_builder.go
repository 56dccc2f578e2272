package reports

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"access-analytics/internal/analyzers"
	"access-analytics/internal/models"
	"access-analytics/internal/readers"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=report_builder.go -destination=./mocks/report_builder_mock.go -package=mocks
type ReportBuilder interface {
	// Build parses the raw log and computes its AccessReport.
	Build(logfile *models.RawLogfile) (*models.AccessReport, error)
}

type reportBuilder struct {
	topUserAgents int
	now           func() time.Time
}

func NewReportBuilder(topUserAgents int) ReportBuilder {
	return &reportBuilder{
		topUserAgents: topUserAgents,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (b *reportBuilder) Build(logfile *models.RawLogfile) (*models.AccessReport, error) {
	source, err := readers.NewLogfileReader(logfile.Format, bytes.NewReader(logfile.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse logfile %q: %w", logfile.LogID, err)
	}

	engine := analyzers.NewAnalyzer(source)
	engine.AnalyzeHourly()
	engine.AnalyzeMonthly()

	report := &models.AccessReport{
		LogID:      logfile.LogID,
		LogName:    logfile.Name,
		Format:     logfile.Format,
		AnalyzedAt: b.now(),

		TotalAccesses:           engine.TotalAccesses(),
		BusiestHour:             engine.BusiestHour(),
		QuietestHour:            engine.QuietestHour(),
		BusiestTwoHourStart:     engine.BusiestTwoHour(),
		BusiestMonth:            engine.BusiestMonth(),
		QuietestMonth:           engine.QuietestMonth(),
		AverageAccessesPerMonth: engine.AverageAccessesPerMonth(),

		HourCounts:  engine.HourCounts(),
		MonthCounts: engine.MonthCounts(),
	}

	if logfile.Format == models.FormatCombined {
		report.TopUserAgents = b.topUserAgentCounts(source)
	}

	return report, nil
}

// topUserAgentCounts runs one extra pass over the source counting normalized
// user-agent families, and keeps the topUserAgents highest counts.
func (b *reportBuilder) topUserAgentCounts(source readers.RecordSource) map[string]int64 {
	counts := make(map[string]int64)
	source.Reset()
	for source.HasNext() {
		record := source.Next()
		if record.UserAgent == "" {
			continue
		}
		counts[b.normalizeUserAgent(record.UserAgent)]++
	}

	if len(counts) <= b.topUserAgents {
		return counts
	}

	type uaCount struct {
		name  string
		count int64
	}
	ranked := make([]uaCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, uaCount{name: name, count: count})
	}
	// Sort by count descending, name ascending for deterministic cutoff
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	top := make(map[string]int64, b.topUserAgents)
	for _, ua := range ranked[:b.topUserAgents] {
		top[ua.name] = ua.count
	}
	return top
}

// normalizeUserAgent parses the user agent to extract the family, or returns
// the original string if parsing yields nothing.
func (b *reportBuilder) normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}

	return ua
}
