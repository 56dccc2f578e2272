package reports

import (
	"context"

	"access-analytics/internal/events"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/svcerrors"
	"access-analytics/internal/stores"
)

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	Analyze(ctx context.Context, event *events.AnalysisRequestedEvent) *svcerrors.ServiceError
}

type analysisService struct {
	reportBuilder ReportBuilder
	logfileStore  stores.LogfileStore
	reportStore   stores.ReportStore
}

func NewAnalysisService(reportBuilder ReportBuilder, logfileStore stores.LogfileStore, reportStore stores.ReportStore) AnalysisService {
	return &analysisService{reportBuilder: reportBuilder, logfileStore: logfileStore, reportStore: reportStore}
}

func (s *analysisService) Analyze(ctx context.Context, event *events.AnalysisRequestedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldLogID, event.LogID).Msg("started analyzing log")

	logfile, err := s.logfileStore.Get(ctx, event.LogID)
	if err != nil {
		return errInternalLogfileStoreFailed(err)
	}

	report, err := s.reportBuilder.Build(logfile)
	if err != nil {
		return errInternalReportBuildFailed(err)
	}

	if err := s.reportStore.Upsert(ctx, report); err != nil {
		return errInternalReportStoreFailed(err)
	}

	metricAnalysisCompletedTotal.WithLabelValues(string(logfile.Format)).Inc()
	logger.Debug().
		Str(loggers.FieldLogID, event.LogID).
		Int64("total_accesses", report.TotalAccesses).
		Msg("finished analyzing log")

	return nil
}
