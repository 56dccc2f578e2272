package readers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"access-analytics/internal/models"
)

// NCSA combined log format:
//
//	host ident authuser [timestamp] "request" status bytes "referer" "user-agent"
//
// The referer/user-agent pair is optional so plain common-log lines parse too.
var combinedLineRe = regexp.MustCompile(`^(\S+) (\S+) (\S+) \[([^\]]+)\] "([^"]*)" (\d{3}) (\S+)(?: "([^"]*)" "([^"]*)")?$`)

const combinedTimeLayout = "02/Jan/2006:15:04:05 -0700"

func parseCombinedLine(line string) (*models.AccessRecord, error) {
	groups := combinedLineRe.FindStringSubmatch(line)
	if groups == nil {
		return nil, fmt.Errorf("not a combined log line: %q", truncateLine(line))
	}

	ts, err := time.Parse(combinedTimeLayout, groups[4])
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", groups[4], err)
	}

	record := &models.AccessRecord{
		Year:      ts.Year(),
		Month:     int(ts.Month()),
		Day:       ts.Day(),
		Hour:      ts.Hour(),
		Minute:    ts.Minute(),
		UserAgent: groups[9],
	}

	// "METHOD path proto"
	requestFields := strings.Fields(groups[5])
	if len(requestFields) >= 2 {
		record.Method = strings.ToUpper(requestFields[0])
		record.Path = requestFields[1]
	}

	if err := validateRecord(record); err != nil {
		return nil, err
	}
	return record, nil
}

func validateRecord(record *models.AccessRecord) error {
	if record.Month < 1 || record.Month > 12 {
		return fmt.Errorf("month out of range [1,12]: %d", record.Month)
	}
	if record.Day < 1 || record.Day > 31 {
		return fmt.Errorf("day out of range [1,31]: %d", record.Day)
	}
	if record.Hour < 0 || record.Hour > 23 {
		return fmt.Errorf("hour out of range [0,23]: %d", record.Hour)
	}
	if record.Minute < 0 || record.Minute > 59 {
		return fmt.Errorf("minute out of range [0,59]: %d", record.Minute)
	}
	return nil
}

func truncateLine(line string) string {
	const max = 120
	if len(line) <= max {
		return line
	}
	return line[:max] + "..."
}
