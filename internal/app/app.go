package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"access-analytics/internal/events"
	internalhttp "access-analytics/internal/http"
	"access-analytics/internal/ingestors"
	"access-analytics/internal/models"
	"access-analytics/internal/reports"
	"access-analytics/internal/shared/configs"
	"access-analytics/internal/shared/filestorages"
	"access-analytics/internal/shared/loggers"
	"access-analytics/internal/stores"
	"access-analytics/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analysisRequestConsumer streams.AnalysisRequestConsumer
	backgroundCtx           context.Context
	backgroundCancel        context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "access-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stream queue
	analysisRequestQueue := streams.NewPartitionedQueueSized[events.AnalysisRequestedEvent](config.Analysis.QueuePartitions, 64)

	// Initialize analysis service
	defaultFormat, err := models.NewLogFormatFromString(config.Analysis.DefaultFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize default log format: %w", err)
	}
	logfileStore := stores.NewLogfileStore(fileStorage)
	reportStore := stores.NewReportStore(fileStorage)
	reportBuilder := reports.NewReportBuilder(config.Analysis.TopUserAgents)
	analysisService := reports.NewAnalysisService(reportBuilder, logfileStore, reportStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	analysisRequestConsumer := streams.NewAnalysisRequestConsumer(analysisRequestQueue, analysisService, consumerLogger)

	// Initialize ingestionService
	analysisRequestProducer := streams.NewAnalysisRequestProducer(analysisRequestQueue)
	ingestionService := ingestors.NewIngestionService(defaultFormat, logfileStore, analysisRequestProducer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, reportStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:                  config,
		appLogger:               appLogger,
		server:                  server,
		analysisRequestConsumer: analysisRequestConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting access-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, default_format=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Analysis.DefaultFormat)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.analysisRequestConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.analysisRequestConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
