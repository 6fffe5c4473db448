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

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/api"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/config"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/database"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/repository"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/service"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/sheets"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the audit database
	db, err := database.Open(cfg.Audit.DBPath)
	if err != nil {
		log.Fatalf("Failed to open audit database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate audit database: %v", err)
	}

	log.Printf("Connected to audit database: %s", cfg.Audit.DBPath)

	if cfg.Sheets.SpreadsheetID == "" || len(cfg.Sheets.CredentialsJSON) == 0 {
		log.Println("Google Sheet not configured; sheet endpoints will report connection failures")
	}

	// Create repositories and collaborator clients
	auditRepo := repository.NewAuditRepository(db)
	yahooClient := yahoo.NewFinanceClient()
	sheetOpener := sheets.NewGoogleSheets(cfg.Sheets.CredentialsJSON, cfg.Sheets.SpreadsheetID)

	// Create services
	systemService := service.NewSystemService(db)
	auditService := service.NewAuditService(auditRepo)
	pricingService := service.NewPricingService(yahooClient, cfg.Pricing.FallbackUSDKRW)
	portfolioService := service.NewPortfolioService(sheetOpener)

	// Create router
	router := api.NewRouter(systemService, pricingService, portfolioService, auditService, cfg)

	// Daily audit-log retention sweep
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		deleted, err := auditService.Purge(cfg.Audit.RetentionDays)
		if err != nil {
			log.Printf("Audit log purge failed: %v", err)
			return
		}
		log.Printf("Audit log purge removed %d entries older than %d days", deleted, cfg.Audit.RetentionDays)
	}); err != nil {
		log.Fatalf("Failed to schedule audit log purge: %v", err)
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
