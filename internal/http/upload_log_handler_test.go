package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"access-analytics/internal/ingestors"
	ingestormocks "access-analytics/internal/ingestors/mocks"
	"access-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUploadLogHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewUploadLogHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/logs", bytes.NewReader([]byte("2024 10 3 14 55\n")))
	req.Header.Set(headerLogName, "access.log")
	req.Header.Set(headerIdempotencyKey, "key123")
	req.Header.Set(headerLogFormat, "simple")
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		IngestLog(
			gomock.Any(),
			"access.log",
			"key123",
			"simple",
			gomock.Any(),
		).
		Return(&ingestors.IngestResult{LogID: "log-42"}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)

	var resp UploadLogResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "log-42", resp.LogID)
}

func TestUploadLogHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewUploadLogHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/logs", bytes.NewReader([]byte("not a log")))
	req.Header.Set(headerLogName, "access.log")
	req.Header.Set(headerIdempotencyKey, "key123")
	req.Header.Set(headerLogFormat, "simple")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TEST_1000", "validation failed", nil)
	mockIngestionService.EXPECT().
		IngestLog(
			gomock.Any(),
			"access.log",
			"key123",
			"simple",
			gomock.Any(),
		).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
