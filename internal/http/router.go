package http

import (
	"net/http"

	"access-analytics/internal/ingestors"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/shared/metrics"
	"access-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, reportStore stores.ReportStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	uploadLogHandler := NewUploadLogHandler(ingestionService)
	getReportHandler := NewGetReportHandler(reportStore)
	hourlyCountsHandler := NewHourlyCountsHandler(reportStore)
	monthlyCountsHandler := NewMonthlyCountsHandler(reportStore)

	// Routes
	router.Post("/logs", errorHandlingAdapter(uploadLogHandler))
	router.Get("/reports/{logID}", errorHandlingAdapter(getReportHandler))
	router.Get("/reports/{logID}/hourly", errorHandlingAdapter(hourlyCountsHandler))
	router.Get("/reports/{logID}/monthly", errorHandlingAdapter(monthlyCountsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
