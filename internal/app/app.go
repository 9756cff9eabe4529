package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"auction-analytics/internal/beacons"
	"auction-analytics/internal/delivery"
	internalhttp "auction-analytics/internal/http"
	"auction-analytics/internal/ingestors"
	"auction-analytics/internal/sessions"
	"auction-analytics/internal/shared/configs"
	"auction-analytics/internal/shared/filestorages"
	"auction-analytics/internal/shared/loggers"
	"auction-analytics/internal/stores"

	"github.com/benbjohnson/clock"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	sessionManager   *sessions.Manager
	beaconConsumer   beacons.Consumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.NewWithFormat(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "auction-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	localStorage := stores.NewLocalStorage(fileStorage)
	batchStore := stores.NewEventBatchStore(fileStorage)

	// Initialize beacon transport
	clk := clock.New()
	beaconQueue := beacons.NewPartitionedQueue[beacons.Beacon](config.Beacon.Partitions, config.Beacon.Buffer)
	beaconProducer := beacons.NewProducer(beaconQueue, clk)
	sender := beacons.NewHTTPSender(time.Duration(config.Beacon.Timeout)*time.Second, config.Beacon.Compression)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "beacon").Logger()
	beaconConsumer := beacons.NewConsumer(beaconQueue, sender, clk, consumerLogger)

	// Initialize sessions
	maxBatchBytes, err := config.Analytics.MaxBatchBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to parse max batch size: %w", err)
	}
	sessionLogger := appLogger.With().Str(loggers.FieldComponent, "sessions").Logger()
	sessionManager := sessions.NewManager(sessions.Config{
		MaxSessions:   config.Sessions.MaxSessions,
		IdleTTL:       config.Sessions.IdleTTL,
		MaxBatchBytes: int(maxBatchBytes),
		Endpoint: delivery.Endpoint{
			Scheme:           config.Analytics.Scheme,
			DefaultHost:      config.Analytics.DefaultHost,
			AdapterVersion:   config.Analytics.AdapterVersion,
			FrameworkVersion: config.Analytics.FrameworkVersion,
		},
	}, localStorage, beaconProducer, sessionLogger)

	eventIngestor := ingestors.NewEventIngestor(sessionManager, batchStore)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(sessionManager, eventIngestor, config.Server.AllowedOrigins, httpLogger)

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
		config:         config,
		appLogger:      appLogger,
		server:         server,
		sessionManager: sessionManager,
		beaconConsumer: beaconConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting auction-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, analytics_host=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Analytics.DefaultHost)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.beaconConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. Queued analytics are
// flushed to the beacon queue and drained before the consumers are cancelled.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Flush every live session
	flushed := app.sessionManager.FlushAll(ctx)
	app.appLogger.Info().
		Int("batches", flushed.Batches).
		Int("payloads", flushed.Payloads).
		Msg("Sessions flushed")

	// 3) Drain buffered beacons
	app.beaconConsumer.Stop(ctx)
	app.appLogger.Info().Msg("Background consumers stopped")

	// 4) Cancel background context
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	return nil
}
