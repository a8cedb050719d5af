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

	"github.com/hazyfin/family-finance-backend/internal/api"
	"github.com/hazyfin/family-finance-backend/internal/config"
	"github.com/hazyfin/family-finance-backend/internal/database"
	"github.com/hazyfin/family-finance-backend/internal/repository"
	"github.com/hazyfin/family-finance-backend/internal/service"
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

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	scheduleRepo := repository.NewSIPScheduleRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	transactionService := service.NewTransactionService(transactionRepo)
	portfolioService := service.NewPortfolioService(transactionRepo, priceRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, transactionRepo, portfolioService)
	scheduleService := service.NewSIPScheduleService(scheduleRepo)
	memberService := service.NewMemberService(memberRepo)
	priceService := service.NewPriceService(priceRepo)

	familyService, err := service.NewFamilyService(
		memberService,
		cfg.Invite.Key,
		time.Duration(cfg.Invite.TTLHrs)*time.Hour,
	)
	if err != nil {
		log.Fatalf("Failed to initialize invite tokens: %v", err)
	}
	if !familyService.Enabled() {
		log.Println("INVITE_TOKEN_KEY not set; invite endpoints disabled")
	}

	// Nightly snapshot refresh
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Snapshot.CronSpec, func() {
		if err := snapshotService.RefreshAll(context.Background(), time.Now()); err != nil {
			log.Printf("Scheduled snapshot refresh finished with errors: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule snapshot refresh (%q): %v", cfg.Snapshot.CronSpec, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Transaction: transactionService,
		Portfolio:   portfolioService,
		Snapshot:    snapshotService,
		SIPSchedule: scheduleService,
		Member:      memberService,
		Family:      familyService,
		Price:       priceService,
	}, cfg)

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
