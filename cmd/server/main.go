package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/api"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/config"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/database"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/repository"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	spaceRepo := repository.NewSpaceRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	cashFlowRepo := repository.NewCashFlowRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	spaceService := service.NewSpaceService(spaceRepo)
	assetService := service.NewAssetService(assetRepo, spaceRepo)
	cashFlowService := service.NewCashFlowService(cashFlowRepo, assetRepo)
	performanceService := service.NewPerformanceService(assetRepo, cashFlowRepo, spaceRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, spaceRepo, performanceService)

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Space:       spaceService,
		Asset:       assetService,
		CashFlow:    cashFlowService,
		Performance: performanceService,
		Snapshot:    snapshotService,
	}, cfg)

	// Schedule the daily portfolio snapshot refresh
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Snapshot.Schedule, func() {
		log.Println("Running scheduled portfolio snapshot refresh")
		if err := snapshotService.RefreshAll(context.Background()); err != nil {
			log.Printf("Scheduled snapshot refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid snapshot schedule %q: %v", cfg.Snapshot.Schedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
