package analyzers

import (
	"math"

	"access-analytics/internal/readers"
)

const (
	hoursPerDay   = 24
	monthsPerYear = 12
)

// Analyzer accumulates access counts into fixed hour-of-day and
// month-of-year buckets and derives simple statistics from them.
//
// The two bucket arrays are populated by two independent full passes over
// the record source (AnalyzeHourly and AnalyzeMonthly); each pass resets the
// source and zeroes its own buckets first, so re-running a pass over a
// stable source is idempotent. Derived statistics are pure reads and may be
// called in any order, any number of times, including before either pass has
// run (buckets default to zero).
//
// One Analyzer owns its buckets and record source exclusively; it is not
// safe for concurrent use.
//
//go:generate mockgen -source=analyzer.go -destination=./mocks/analyzer_mock.go -package=mocks
type Analyzer interface {
	// AnalyzeHourly replays the record source and rebuilds the hour buckets.
	AnalyzeHourly()
	// AnalyzeMonthly replays the record source and rebuilds the month buckets.
	AnalyzeMonthly()

	// TotalAccesses sums the hour buckets. It is zero until AnalyzeHourly
	// has run, regardless of the month buckets.
	TotalAccesses() int64
	// BusiestHour returns the lowest hour [0,23] holding the maximum count.
	// An all-zero array yields 0, which is indistinguishable from a busiest
	// hour of midnight.
	BusiestHour() int
	// QuietestHour returns the lowest hour holding the minimum non-zero
	// count, or -1 when every bucket is zero.
	QuietestHour() int
	// BusiestTwoHour returns the start hour of the consecutive pair with the
	// maximal summed count. The window wraps: the pair starting at 23 is
	// (23, 0). Lowest start index wins ties.
	BusiestTwoHour() int
	// BusiestMonth returns the lowest month [1,12] holding the maximum
	// count. An all-zero array yields 1.
	BusiestMonth() int
	// QuietestMonth returns the lowest month holding the minimum non-zero
	// count. When every bucket is zero the result is 0, not -1: the
	// one-based conversion adds 1 to the internal sentinel. Callers relying
	// on the no-data signal must compare against 0 here and -1 for
	// QuietestHour.
	QuietestMonth() int
	// AverageAccessesPerMonth is sum(month buckets)/12 with truncating
	// integer division. It sums the month buckets independently, so it can
	// diverge from TotalAccesses()/12 when only one pass has run.
	AverageAccessesPerMonth() int64

	// HourCounts returns a copy of the hour buckets.
	HourCounts() [24]int64
	// MonthCounts returns a copy of the month buckets.
	MonthCounts() [12]int64
}

type analyzer struct {
	source      readers.RecordSource
	hourCounts  [hoursPerDay]int64
	monthCounts [monthsPerYear]int64
}

func NewAnalyzer(source readers.RecordSource) Analyzer {
	return &analyzer{source: source}
}

func (a *analyzer) AnalyzeHourly() {
	a.source.Reset()
	a.hourCounts = [hoursPerDay]int64{}
	for a.source.HasNext() {
		a.hourCounts[a.source.Next().Hour]++
	}
}

func (a *analyzer) AnalyzeMonthly() {
	a.source.Reset()
	a.monthCounts = [monthsPerYear]int64{}
	for a.source.HasNext() {
		// months are one-based, buckets zero-based
		a.monthCounts[a.source.Next().Month-1]++
	}
}

func (a *analyzer) TotalAccesses() int64 {
	var total int64
	for _, count := range a.hourCounts {
		total += count
	}
	return total
}

func (a *analyzer) BusiestHour() int {
	busiestHour := 0
	var busiestAccesses int64
	for hour, accesses := range a.hourCounts {
		if accesses > busiestAccesses {
			busiestHour = hour
			busiestAccesses = accesses
		}
	}
	return busiestHour
}

func (a *analyzer) QuietestHour() int {
	quietestHour := -1
	var quietestAccesses int64 = math.MaxInt64
	for hour, accesses := range a.hourCounts {
		if accesses != 0 && accesses < quietestAccesses {
			quietestHour = hour
			quietestAccesses = accesses
		}
	}
	return quietestHour
}

func (a *analyzer) BusiestTwoHour() int {
	busiestStart := 0
	var busiestAccesses int64
	for hour := range a.hourCounts {
		accesses := a.hourCounts[hour] + a.hourCounts[(hour+1)%hoursPerDay]
		if accesses > busiestAccesses {
			busiestStart = hour
			busiestAccesses = accesses
		}
	}
	return busiestStart
}

func (a *analyzer) BusiestMonth() int {
	busiestMonth := 0
	var busiestAccesses int64
	for month, accesses := range a.monthCounts {
		if accesses > busiestAccesses {
			busiestMonth = month
			busiestAccesses = accesses
		}
	}
	return busiestMonth + 1
}

func (a *analyzer) QuietestMonth() int {
	quietestMonth := -1
	var quietestAccesses int64 = math.MaxInt64
	for month, accesses := range a.monthCounts {
		if accesses != 0 && accesses < quietestAccesses {
			quietestMonth = month
			quietestAccesses = accesses
		}
	}
	// the +1 applies to the -1 sentinel too, so "no data" surfaces as 0
	return quietestMonth + 1
}

func (a *analyzer) AverageAccessesPerMonth() int64 {
	var total int64
	for _, count := range a.monthCounts {
		total += count
	}
	return total / monthsPerYear
}

func (a *analyzer) HourCounts() [hoursPerDay]int64 {
	return a.hourCounts
}

func (a *analyzer) MonthCounts() [monthsPerYear]int64 {
	return a.monthCounts
}
