//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pranavc1515/email-sender/internal/helpers"
	"github.com/pranavc1515/email-sender/internal/logger"
	"github.com/pranavc1515/email-sender/internal/server"
)

// @title           Email Sender API
// @version         1.0.0
// @description     A REST API for sending emails using Gmail SMTP. Supports single and bulk email sending with both plain text and HTML content.
// @BasePath        /

func main() {
	err := godotenv.Load()
	if err != nil {
		// A missing .env is fine when variables come from the environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	logger.InitLogger(stage)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, cfg, err := server.NewRouter(ctx)
	if err != nil {
		logger.Fatal("Failed to start email sender", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
