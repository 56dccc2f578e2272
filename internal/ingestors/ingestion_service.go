package ingestors

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"access-analytics/internal/events"
	"access-analytics/internal/models"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/metrics"
	"access-analytics/internal/shared/ulid"
	"access-analytics/internal/stores"
	"access-analytics/internal/streams"
)

const (
	maxLogBytes   = 2 * 1024 * 1024
	maxLogNameLen = 256
)

// IngestResult represents the result of a log upload.
type IngestResult struct {
	LogID string
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestLog stores a raw access log and requests its analysis.
	IngestLog(ctx context.Context, logName string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	defaultFormat           models.LogFormat
	logfileStore            stores.LogfileStore
	analysisRequestProducer streams.AnalysisRequestProducer
}

func NewIngestionService(defaultFormat models.LogFormat, logfileStore stores.LogfileStore, analysisRequestProducer streams.AnalysisRequestProducer) IngestionService {
	return &ingestionService{
		defaultFormat:           defaultFormat,
		logfileStore:            logfileStore,
		analysisRequestProducer: analysisRequestProducer,
	}
}

func (s *ingestionService) IngestLog(ctx context.Context, logName string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting log with name: %s, idempotency key: %s, format: %s", logName, idempotencyKey, format)

	logfile, err := s.validateUpload(logName, format, r)
	if err != nil {
		return nil, err
	}

	logID := strings.TrimSpace(idempotencyKey)
	if logID == "" {
		logID = ulid.NewULID()
	}
	logfile.LogID = logID

	// Store the raw log. An atomic create-if-not-exists put makes replayed
	// idempotency keys surface as a conflict instead of a second analysis.
	err = s.logfileStore.Put(ctx, logfile)
	if err != nil {
		if errors.Is(err, stores.ErrLogfileAlreadyExist) {
			svcError := errLogAlreadyProcessed(err)
			metricLogIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		return nil, errInternalLogfileStoreFailed(err)
	}

	event := &events.AnalysisRequestedEvent{
		LogID:       logID,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.analysisRequestProducer.Produce(ctx, event); err != nil {
		return nil, errInternalAnalysisRequestPublisherFailed(err)
	}

	metricLogIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &IngestResult{LogID: logID}, nil
}

func (s *ingestionService) validateUpload(logName string, format string, r io.Reader) (*models.RawLogfile, error) {
	logName = strings.TrimSpace(logName)
	if len(logName) > maxLogNameLen {
		return nil, errValidationFailed("log name too long: max 256 characters", nil)
	}
	if logName == "" {
		logName = "access.log"
	}

	logFormat := s.defaultFormat
	if trimmed := strings.TrimSpace(format); trimmed != "" {
		parsed, err := models.NewLogFormatFromString(trimmed)
		if err != nil {
			return nil, errValidationFailed("unsupported log format: must be one of simple, combined", err)
		}
		logFormat = parsed
	}

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}
	content, err := s.readWithLimit(r, maxLogBytes)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, errValidationFailed("log content cannot be empty", nil)
	}

	return &models.RawLogfile{
		Name:    logName,
		Format:  logFormat,
		Content: content,
	}, nil
}

// readWithLimit reads up to max+1 bytes from r and rejects payloads above max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > max {
		return nil, errValidationFailed("log too large: must be <= 2MB", nil)
	}
	return buf, nil
}
