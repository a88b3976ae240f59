package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexbank/config"
	httpHandler "nexbank/internal/adapter/http/handler"
	"nexbank/internal/adapter/storage/memory"
	redisStorage "nexbank/internal/adapter/storage/redis"
	"nexbank/internal/core/ports"
	"nexbank/internal/service"
	"nexbank/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting NexBank API")

	ctx := context.Background()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Seed data and in-memory repositories
	seed := memory.DefaultSeed()
	accountRepo := memory.NewAccountRepo(seed)
	cardRepo := memory.NewCardRepo(seed)
	txRepo := memory.NewTransactionRepo(seed)
	contactRepo := memory.NewContactRepo(seed)
	notificationRepo := memory.NewNotificationRepo(seed)
	catalogRepo := memory.NewCatalogRepo(seed)
	spendingRepo := memory.NewSpendingRepo(seed)

	// Redis-backed stores
	sessionStore := redisStorage.NewSessionStore(rdb)
	preferenceStore := redisStorage.NewPreferenceStore(rdb)
	pendingBillStore := redisStorage.NewPendingBillStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Business services
	delay := cfg.Bank.ProcessingDelay
	authSvc := service.NewAuthService(sessionStore, hashSvc, tokenSvc, seed.UserTemplate, delay)
	transferSvc := service.NewTransferService(accountRepo, contactRepo, delay)
	billPaySvc := service.NewBillPayService(catalogRepo, pendingBillStore, delay, cfg.Bank.BillInvoiceTTL)
	rechargeSvc := service.NewRechargeService(catalogRepo, delay)
	preferenceSvc := service.NewPreferenceService(preferenceStore, cfg.JWT.Expiry)
	reportingSvc := service.NewReportingService(accountRepo, txRepo, spendingRepo, preferenceSvc)

	receiptRenderer, err := service.NewReceiptRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize receipt renderer")
	}

	// Health checkers
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:         authSvc,
		TransferSvc:     transferSvc,
		BillPaySvc:      billPaySvc,
		RechargeSvc:     rechargeSvc,
		PreferenceSvc:   preferenceSvc,
		ReportingSvc:    reportingSvc,
		ReceiptRenderer: receiptRenderer,
		Accounts:        accountRepo,
		Cards:           cardRepo,
		Contacts:        contactRepo,
		Notifications:   notificationRepo,
		Catalog:         catalogRepo,
		TokenSvc:        tokenSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{redisHealth},
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
