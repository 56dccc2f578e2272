package readers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"access-analytics/internal/models"
)

// NewLogfileReader parses an entire access log from r into an in-memory
// RecordSource. Parsing is eager so that the returned source is restartable
// and traversal itself can never fail; a malformed line is reported as a
// construction error naming the line number. Blank lines are skipped.
func NewLogfileReader(format models.LogFormat, r io.Reader) (RecordSource, error) {
	parse, err := lineParser(format)
	if err != nil {
		return nil, err
	}

	var records []*models.AccessRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	metricRecordsParsedTotal.WithLabelValues(string(format)).Add(float64(len(records)))
	return NewStaticSource(records), nil
}

func lineParser(format models.LogFormat) (func(string) (*models.AccessRecord, error), error) {
	switch format {
	case models.FormatSimple:
		return parseSimpleLine, nil
	case models.FormatCombined:
		return parseCombinedLine, nil
	default:
		return nil, fmt.Errorf("invalid log format: %q", format)
	}
}

// parseSimpleLine parses a "year month day hour minute" line.
func parseSimpleLine(line string) (*models.AccessRecord, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return nil, fmt.Errorf("expected 5 fields (year month day hour minute), got %d", len(fields))
	}

	values := make([]int, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("field %d is not a number: %q", i+1, fields[i])
		}
		values[i] = v
	}

	record := &models.AccessRecord{
		Year:   values[0],
		Month:  values[1],
		Day:    values[2],
		Hour:   values[3],
		Minute: values[4],
	}
	if err := validateRecord(record); err != nil {
		return nil, err
	}
	return record, nil
}
