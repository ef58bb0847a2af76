package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/config"
	"poultryfarm/backend/internal/repository/mongodb"
	"poultryfarm/backend/internal/repository/sheets"
	"poultryfarm/backend/internal/scheduler"
	"poultryfarm/backend/internal/server/handlers"
	"poultryfarm/backend/internal/server/router"
	batchsvc "poultryfarm/backend/internal/service/batches"
	chatsvc "poultryfarm/backend/internal/service/chat"
	forecastingsvc "poultryfarm/backend/internal/service/forecasting"
	personnelsvc "poultryfarm/backend/internal/service/personnel"
	reportingsvc "poultryfarm/backend/internal/service/reporting"
	usersvc "poultryfarm/backend/internal/service/users"
	weathersvc "poultryfarm/backend/internal/service/weather"
	"poultryfarm/backend/pkg/clients/identity"
	"poultryfarm/backend/pkg/clients/openmeteo"
	"poultryfarm/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	identityClient := identity.NewClient(cfg.Identity)
	weatherClient := openmeteo.NewClient(cfg.Weather)

	batchService := batchsvc.NewService(repo, baseLogger.Named("svc.batches"))
	userService := usersvc.NewService(identityClient, repo, baseLogger.Named("svc.users"))
	chatService := chatsvc.NewService(repo, baseLogger.Named("svc.chat"))
	personnelService := personnelsvc.NewService(repo, baseLogger.Named("svc.personnel"))
	forecastingService := forecastingsvc.NewService(repo, baseLogger.Named("svc.forecasting"))
	weatherService := weathersvc.NewService(weatherClient, baseLogger.Named("svc.weather"))

	// The ledger export is optional; the rest of the system runs fine
	// without a spreadsheet configured.
	var reportingService *reportingsvc.Service
	if cfg.SheetsEnabled() {
		exportRepo, err := sheets.NewLedgerExportRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		reportingService = reportingsvc.NewService(exportRepo, repo, baseLogger.Named("svc.reporting"))
		baseLogger.Info("ledger export to sheets enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, ledger export disabled")
	}

	engine := router.New(router.Handlers{
		Users:     handlers.NewUserHandler(userService, baseLogger.Named("handlers.users")),
		Batches:   handlers.NewBatchHandler(batchService, baseLogger.Named("handlers.batches")),
		Ledger:    handlers.NewLedgerHandler(batchService, baseLogger.Named("handlers.ledger")),
		Chat:      handlers.NewChatHandler(chatService, baseLogger.Named("handlers.chat")),
		Personnel: handlers.NewPersonnelHandler(personnelService, baseLogger.Named("handlers.personnel")),
		Forecast:  handlers.NewForecastHandler(forecastingService, baseLogger.Named("handlers.forecast")),
		Weather:   handlers.NewWeatherHandler(weatherService, baseLogger.Named("handlers.weather")),
	}, identityClient, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, weatherService, reportingService, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
