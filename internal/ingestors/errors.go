package ingestors

import (
	"fmt"

	"access-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed    = "ING_1000"
	codeLogAlreadyProcessed = "ING_1001"

	codeInternalLogfileStoreFailed             = "ING_9000"
	codeInternalAnalysisRequestPublisherFailed = "ING_9001"
)

// errValidationFailed returns an error for upload validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errLogAlreadyProcessed returns an error when an upload replays a known idempotency key.
func errLogAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeLogAlreadyProcessed, "log already processed", cause)
}

// errInternalLogfileStoreFailed returns an error when the logfile store operation fails.
func errInternalLogfileStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogfileStoreFailed, fmt.Errorf("logfileStoreFailed: %w", cause))
}

// errInternalAnalysisRequestPublisherFailed returns an error when publishing the analysis request fails.
func errInternalAnalysisRequestPublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAnalysisRequestPublisherFailed, fmt.Errorf("analysisRequestPublisherFailed: %w", cause))
}
