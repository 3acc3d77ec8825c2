package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"driver-tips/internal/consumers"
	internalhttp "driver-tips/internal/http"
	"driver-tips/internal/processors"
	"driver-tips/internal/queries"
	"driver-tips/internal/shared/configs"
	"driver-tips/internal/shared/loggers"
	"driver-tips/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	tipEventConsumer consumers.KafkaConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "driver-tips").
		Logger()

	// Initialize aggregate store backend
	aggregateStore, err := newAggregateStore(config.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize aggregate store: %w", err)
	}

	// Initialize driver repository
	driverStore, err := stores.NewSQLiteDriverStore(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize driver store: %w", err)
	}

	// Initialize tip event pipeline
	tipProcessor := processors.NewTipProcessor(aggregateStore)
	batchConsumer := consumers.NewBatchConsumer(tipProcessor)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	tipEventConsumer := consumers.NewKafkaConsumer(config.Kafka, batchConsumer, consumerLogger)

	// Initialize query services
	driverService := queries.NewDriverService(driverStore)
	tipQueryService := queries.NewTipQueryService(driverStore, aggregateStore)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(driverService, tipQueryService, httpLogger)

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
		config:           config,
		appLogger:        appLogger,
		server:           server,
		tipEventConsumer: tipEventConsumer,
	}, nil
}

func newAggregateStore(cfg configs.StoreConfig) (stores.AggregateStore, error) {
	switch cfg.Backend {
	case "redis":
		client, err := stores.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return stores.NewRedisAggregateStore(client), nil
	case "memory":
		return stores.NewMemoryAggregateStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting driver-tips service on port %d (log_level=%s, store_backend=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Store.Backend)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.tipEventConsumer.Start(app.backgroundCtx)

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
	app.tipEventConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
