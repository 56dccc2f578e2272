package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/filestorages"
)

var ErrReportNotFound = errors.New("report not found")

// ReportStore keeps one computed AccessReport per log ID. Upsert overwrites:
// re-analyzing the same log replaces its report.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Upsert(ctx context.Context, report *models.AccessReport) error
	Get(ctx context.Context, logID string) (*models.AccessReport, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Upsert(ctx context.Context, report *models.AccessReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	_, err = s.fileStorage.Put(ctx, s.getKey(report.LogID), reader, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put report: %w", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, logID string) (*models.AccessReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(logID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var report models.AccessReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

func (s *reportStore) getKey(logID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, logID)
}
