package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/ai"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/api"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/config"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/db"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/jobs"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/repository/sqlite"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/services"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/statbotics"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/tba"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("ExcaliStrategy Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("event_key=%s", cfg.EventKey)
	log.Debug("season=%d", cfg.Season)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("aggregation_worker_count=%d", cfg.AggregationWorkers)
	log.Debug("aggregation_queue_size=%d", cfg.AggregationQueueSize)
	if cfg.TBAAuthKey == "" {
		log.Warn("TBA_AUTH_KEY not set, event roster lookups will fail")
	}
	if cfg.OpenRouterAPIKey == "" {
		log.Warn("OPENROUTER_API_KEY not set, strategy insights will fail")
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	scoutingRepo := sqlite.NewScoutingRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)
	strategyRepo := sqlite.NewStrategyRepository(database.DB)

	// External clients
	tbaClient := tba.New(cfg.TBABaseURL, cfg.TBAAuthKey)
	statClient := statbotics.New(cfg.StatboticsV3BaseURL, cfg.StatboticsV2BaseURL)
	aiClient := ai.New(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel)

	// Worker pool and job queue
	pool := worker.NewPool(cfg.AggregationWorkers, cfg.AggregationQueueSize)

	// Services
	aggregationService := services.NewAggregationService(scoutingRepo, statsRepo)
	queue := jobs.NewWorkerQueue(pool, aggregationService)
	teamDataService := services.NewTeamDataService(statsRepo, scoutingRepo, tbaClient, statClient, cfg.EventKey)
	allianceService := services.NewAllianceService(teamDataService)
	strategyService := services.NewStrategyService(strategyRepo, teamDataService, aiClient)
	scoutingService := services.NewScoutingService(scoutingRepo, queue)

	srv := &api.Server{
		DB:                 database,
		Pool:               pool,
		Queue:              queue,
		ScoutingService:    scoutingService,
		TeamDataService:    teamDataService,
		AggregationService: aggregationService,
		AllianceService:    allianceService,
		StrategyService:    strategyService,
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping worker pool")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	pool.Stop()

	log.Info("===========================================")
	log.Info("ExcaliStrategy Server Stopped")
	log.Info("===========================================")
}
