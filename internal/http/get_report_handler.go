package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"access-analytics/internal/stores"
)

type getReportHandler struct {
	reportStore stores.ReportStore
}

func NewGetReportHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &getReportHandler{
		reportStore: reportStore,
	}
}

func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	logID := chi.URLParam(r, "logID")

	report, err := h.reportStore.Get(r.Context(), logID)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return newReportNotFoundError(logID)
		}
		return newReportStoreFailedError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(report)
}
