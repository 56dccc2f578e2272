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

var (
	ErrLogfileAlreadyExist = errors.New("logfile already exists")
	ErrLogfileNotFound     = errors.New("logfile not found")
)

// LogfileStore keeps uploaded raw logs. Put relies on the blob layer's
// atomic "create-if-not-exists" semantics: when two uploads race on the same
// log ID (idempotency key), exactly one wins and the other receives
// ErrLogfileAlreadyExist, which makes upload replay detection reliable
// without locking.
//
//go:generate mockgen -source=logfile_store.go -destination=./mocks/logfile_store_mock.go -package=mocks
type LogfileStore interface {
	Put(ctx context.Context, logfile *models.RawLogfile) error
	Get(ctx context.Context, logID string) (*models.RawLogfile, error)
}

type logfileStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLogfileStore(fileStorage filestorages.FileStorage) LogfileStore {
	return &logfileStore{fileStorage: fileStorage, dir: "raw-logs"}
}

func (s *logfileStore) Put(ctx context.Context, logfile *models.RawLogfile) error {
	jsonData, err := json.Marshal(logfile)
	if err != nil {
		return fmt.Errorf("failed to marshal logfile: %w", err)
	}
	reader := bytes.NewReader(jsonData)

	_, err = s.fileStorage.Put(ctx, s.getKey(logfile.LogID), reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrLogfileAlreadyExist
		}
		return fmt.Errorf("failed to put logfile: %w", err)
	}
	return nil
}

func (s *logfileStore) Get(ctx context.Context, logID string) (*models.RawLogfile, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(logID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrLogfileNotFound
		}
		return nil, fmt.Errorf("failed to get logfile: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read logfile: %w", err)
	}
	var logfile models.RawLogfile
	if err := json.Unmarshal(data, &logfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logfile: %w", err)
	}
	return &logfile, nil
}

func (s *logfileStore) getKey(logID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, logID)
}
