package reports

import (
	"fmt"

	"access-analytics/internal/shared/svcerrors"
)

const (
	codeInternalLogfileStoreFailed = "RPT_9000"
	codeInternalReportBuildFailed  = "RPT_9001"
	codeInternalReportStoreFailed  = "RPT_9002"
)

// errInternalLogfileStoreFailed returns an error when loading the raw log fails.
func errInternalLogfileStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogfileStoreFailed, fmt.Errorf("logfileStoreFailed: %w", cause))
}

// errInternalReportBuildFailed returns an error when parsing or analyzing the log fails.
func errInternalReportBuildFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportBuildFailed, fmt.Errorf("reportBuildFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when storing the report fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
