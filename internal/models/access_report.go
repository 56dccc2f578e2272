package models

import "time"

// AccessReport is the computed hour-of-day / month-of-year statistics for one
// uploaded log.
//
// Sentinel conventions, kept for compatibility with the original analyzer
// this system replaces:
//   - QuietestHour is -1 when every hour bucket is zero.
//   - QuietestMonth is 0 (not -1) when every month bucket is zero, because
//     the one-based month conversion adds 1 to the internal -1 sentinel.
//   - BusiestHour falls back to 0 and BusiestMonth to 1 on an empty log;
//     neither is a dedicated "no data" signal.
//
// Example JSON:
//
//	{
//	  "logId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "logName": "demo.log",
//	  "format": "combined",
//	  "analyzedAt": "2026-08-31T10:00:00Z",
//	  "totalAccesses": 6,
//	  "busiestHour": 23,
//	  "quietestHour": 1,
//	  "busiestTwoHourStart": 23,
//	  "busiestMonth": 10,
//	  "quietestMonth": 10,
//	  "averageAccessesPerMonth": 0,
//	  "hourCounts": [2,1,0, ... ,3],
//	  "monthCounts": [0, ... ,6, ... ,0],
//	  "topUserAgents": {"Chrome": 4, "curl": 2}
//	}
type AccessReport struct {
	LogID      string    `json:"logId"`
	LogName    string    `json:"logName"`
	Format     LogFormat `json:"format"`
	AnalyzedAt time.Time `json:"analyzedAt"`

	TotalAccesses           int64 `json:"totalAccesses"`
	BusiestHour             int   `json:"busiestHour"`
	QuietestHour            int   `json:"quietestHour"`
	BusiestTwoHourStart     int   `json:"busiestTwoHourStart"`
	BusiestMonth            int   `json:"busiestMonth"`
	QuietestMonth           int   `json:"quietestMonth"`
	AverageAccessesPerMonth int64 `json:"averageAccessesPerMonth"`

	HourCounts  [24]int64 `json:"hourCounts"`
	MonthCounts [12]int64 `json:"monthCounts"`

	// TopUserAgents is only present for combined-format logs.
	TopUserAgents map[string]int64 `json:"topUserAgents,omitempty"`
}
