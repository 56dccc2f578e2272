package http

import (
	"fmt"

	"access-analytics/internal/shared/svcerrors"
)

func newReportNotFoundError(logID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError("RPT_1000", fmt.Sprintf("no report found for log %q", logID), nil)
}

func newReportStoreFailedError(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError("RPT_9003", cause)
}
