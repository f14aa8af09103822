package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-relay-backend/config"
	_ "salon-relay-backend/docs" // Important for Swagger
	v1 "salon-relay-backend/internal/delivery/http/v1"
	"salon-relay-backend/internal/usecase"
	"salon-relay-backend/pkg/logger"
	"salon-relay-backend/pkg/telegram"

	"github.com/go-playground/validator/v10"
)

// @title           Salon Request Relay API
// @version         1.0
// @description     Relays booking form submissions to a Telegram operator chat.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting salon relay backend", "host", cfg.Host, "port", cfg.Port)

	// 3. Setup Telegram Notifier
	notifier := telegram.NewService(cfg)
	if !notifier.IsConfigured() {
		logger.Log.Warn("Telegram not fully configured - submissions will be rejected")
	}

	// 4. Setup UseCases
	validate := validator.New()
	submissionUC := usecase.NewSubmissionUsecase(notifier, validate)
	healthUC := usecase.NewHealthUsecase(notifier)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		HealthUC:     healthUC,
		Config:       cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
