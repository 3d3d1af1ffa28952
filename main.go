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

	"semar-etiquetas/app"
	"semar-etiquetas/config"
	"semar-etiquetas/logging"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// Use Overload to ensure .env values override system environment variables
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("Warning: .env file not loaded, using system environment variables: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize application
	application, err := app.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("❌ Failed to initialize: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Errorf("❌ Shutdown: %v", err)
		}
	}()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Infof("Server starting on %s", cfg.Addr())
	logger.Infof("Labels endpoint: GET %s/labels?mode=IFOOD&orderNumber=1234&format=pdf", cfg.BaseURL)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("Server failed to start: %v", err)
	}
}
