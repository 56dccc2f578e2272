package http

import (
	"encoding/json"
	"net/http"

	"access-analytics/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// UploadLogResponse carries the ID under which the uploaded log and its
// report can be fetched.
type UploadLogResponse struct {
	LogID string `json:"logId"`
}

type uploadLogHandler struct {
	ingestionService ingestors.IngestionService
}

func NewUploadLogHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &uploadLogHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /logs requests. Analysis happens asynchronously, so
// the response is 202 with the log ID to poll the report under.
func (h *uploadLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestLog(r.Context(), logName(r), idempotencyKey(r), logFormat(r), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(UploadLogResponse{LogID: result.LogID})
}
