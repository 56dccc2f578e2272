package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/svcerrors"
	"access-analytics/internal/stores"
	storemocks "access-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportCountsHandler_Handle_Hourly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportStore := storemocks.NewMockReportStore(ctrl)
	handler := NewHourlyCountsHandler(mockReportStore)

	report := &models.AccessReport{LogID: "log-42"}
	report.HourCounts[0] = 2
	report.HourCounts[23] = 5

	req := requestWithLogID(http.MethodGet, "/reports/log-42/hourly", "log-42")
	rr := httptest.NewRecorder()

	mockReportStore.EXPECT().
		Get(gomock.Any(), "log-42").
		Return(report, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimRight(rr.Body.String(), "\n"), "\n")
	require.Len(t, lines, 25)
	assert.Equal(t, "Hr: Count", lines[0])
	assert.Equal(t, "0: 2", lines[1])
	assert.Equal(t, "23: 5", lines[24])
}

func TestReportCountsHandler_Handle_Monthly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportStore := storemocks.NewMockReportStore(ctrl)
	handler := NewMonthlyCountsHandler(mockReportStore)

	report := &models.AccessReport{LogID: "log-42"}
	report.MonthCounts[9] = 6

	req := requestWithLogID(http.MethodGet, "/reports/log-42/monthly", "log-42")
	rr := httptest.NewRecorder()

	mockReportStore.EXPECT().
		Get(gomock.Any(), "log-42").
		Return(report, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	lines := strings.Split(strings.TrimRight(rr.Body.String(), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "Month: Count", lines[0])
	assert.Equal(t, "1: 0", lines[1])
	assert.Equal(t, "10: 6", lines[10])
}

func TestReportCountsHandler_Handle_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportStore := storemocks.NewMockReportStore(ctrl)
	handler := NewHourlyCountsHandler(mockReportStore)

	req := requestWithLogID(http.MethodGet, "/reports/missing/hourly", "missing")
	rr := httptest.NewRecorder()

	mockReportStore.EXPECT().
		Get(gomock.Any(), "missing").
		Return(nil, stores.ErrReportNotFound)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_1000", svcErr.Code)
}
