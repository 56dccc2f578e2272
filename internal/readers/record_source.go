package readers

import (
	"access-analytics/internal/models"
)

// RecordSource is a finite, restartable sequence of access records.
// Reset rewinds to the beginning so that a subsequent full traversal yields
// the same records in the same order as any prior traversal. Next is
// undefined when HasNext is false.
//
//go:generate mockgen -source=record_source.go -destination=./mocks/record_source_mock.go -package=mocks
type RecordSource interface {
	Reset()
	HasNext() bool
	Next() *models.AccessRecord
}

type sliceSource struct {
	records []*models.AccessRecord
	cursor  int
}

// NewStaticSource wraps an in-memory record slice as a RecordSource.
func NewStaticSource(records []*models.AccessRecord) RecordSource {
	return &sliceSource{records: records}
}

func (s *sliceSource) Reset() {
	s.cursor = 0
}

func (s *sliceSource) HasNext() bool {
	return s.cursor < len(s.records)
}

func (s *sliceSource) Next() *models.AccessRecord {
	record := s.records[s.cursor]
	s.cursor++
	return record
}
