package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"access-analytics/internal/models"
	"access-analytics/internal/reports"
	"access-analytics/internal/stores"
)

type countsKind int

const (
	countsHourly countsKind = iota
	countsMonthly
)

// reportCountsHandler serves the plain-text count tables of a stored report,
// one bucket per line.
type reportCountsHandler struct {
	reportStore stores.ReportStore
	kind        countsKind
}

func NewHourlyCountsHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &reportCountsHandler{reportStore: reportStore, kind: countsHourly}
}

func NewMonthlyCountsHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &reportCountsHandler{reportStore: reportStore, kind: countsMonthly}
}

func (h *reportCountsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	logID := chi.URLParam(r, "logID")

	report, err := h.reportStore.Get(r.Context(), logID)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return newReportNotFoundError(logID)
		}
		return newReportStoreFailedError(err)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	return h.render(w, report)
}

func (h *reportCountsHandler) render(w http.ResponseWriter, report *models.AccessReport) error {
	if h.kind == countsMonthly {
		return reports.RenderMonthlyCounts(w, report.MonthCounts)
	}
	return reports.RenderHourlyCounts(w, report.HourCounts)
}
