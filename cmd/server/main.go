package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcatalog "github.com/bizdesk/backend/internal/application/catalog"
	appclient "github.com/bizdesk/backend/internal/application/client"
	appidentity "github.com/bizdesk/backend/internal/application/identity"
	appquote "github.com/bizdesk/backend/internal/application/quote"
	appreport "github.com/bizdesk/backend/internal/application/report"
	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/infrastructure/config"
	"github.com/bizdesk/backend/internal/infrastructure/event"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/infrastructure/persistence"
	"github.com/bizdesk/backend/internal/infrastructure/telemetry"
	"github.com/bizdesk/backend/internal/interfaces/http/handler"
	"github.com/bizdesk/backend/internal/interfaces/http/router"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting BizDesk backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing. Disabled in config means a no-op provider.
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Fatal("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	historyRepo := persistence.NewGormClientHistoryRepository(db.DB)
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	allocator := persistence.NewGormSequenceAllocator(db.DB)
	statsRepo := persistence.NewGormQuoteStatsRepository(db.DB)

	// Event bus. The history recorder turns client lifecycle events
	// into persisted history rows.
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(appclient.NewHistoryRecorder(historyRepo, log))

	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	authService := appidentity.NewAuthService(userRepo, jwtService, log)
	clientService := appclient.NewClientService(clientRepo, historyRepo, userRepo, allocator, eventBus, log)
	quoteService := appquote.NewQuoteService(quoteRepo, clientRepo, allocator, eventBus, log)
	catalogService := appcatalog.NewCatalogService(serviceRepo, log)
	statsService := appreport.NewStatsService(statsRepo, log)

	engine := router.New(cfg, jwtService, log, router.Handlers{
		System:  handler.NewSystemHandler(db),
		Auth:    handler.NewAuthHandler(authService),
		Client:  handler.NewClientHandler(clientService),
		Quote:   handler.NewQuoteHandler(quoteService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Report:  handler.NewReportHandler(statsService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
