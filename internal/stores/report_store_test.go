package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"access-analytics/internal/models"
	"access-analytics/internal/shared/filestorages"
	"access-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testReport() *models.AccessReport {
	report := &models.AccessReport{
		LogID:                   "log-1",
		LogName:                 "demo.log",
		Format:                  models.FormatSimple,
		AnalyzedAt:              time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		TotalAccesses:           6,
		BusiestHour:             23,
		QuietestHour:            1,
		BusiestTwoHourStart:     23,
		BusiestMonth:            10,
		QuietestMonth:           10,
		AverageAccessesPerMonth: 0,
	}
	report.HourCounts[0] = 2
	report.HourCounts[1] = 1
	report.HourCounts[23] = 3
	report.MonthCounts[9] = 6
	return report
}

func TestReportStore_Upsert_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	report := testReport()
	expectedJSON, _ := json.Marshal(report)

	mockFileStorage.EXPECT().
		Put(ctx, "reports/log-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Upsert(ctx, report)
	assert.NoError(t, err)
}

func TestReportStore_Upsert_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Put(ctx, "reports/log-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		Return(nil, errors.New("storage error"))

	err := store.Upsert(ctx, testReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put report")
	assert.Contains(t, err.Error(), "storage error")
}

func TestReportStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	stored := testReport()
	jsonData, _ := json.Marshal(stored)

	mockFileStorage.EXPECT().
		Get(ctx, "reports/log-1.json").
		Return(io.NopCloser(bytes.NewReader(jsonData)), nil)

	report, err := store.Get(ctx, "log-1")
	require.NoError(t, err)
	assert.Equal(t, stored, report)
}

func TestReportStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Get(ctx, "reports/missing.json").
		Return(nil, filestorages.ErrFileNotFound)

	report, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
	assert.Nil(t, report)
}

func TestReportStore_Get_CorruptJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Get(ctx, "reports/log-1.json").
		Return(io.NopCloser(bytes.NewReader([]byte("{not json"))), nil)

	report, err := store.Get(ctx, "log-1")
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to unmarshal report")
}
