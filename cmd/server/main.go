package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-parser/internal/config"
	"resume-parser/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	cfg := config.NewConfig()
	container, err := config.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Handlers
	parseHandler := handler.NewParseHandler(
		container.ResumeService,
		container.Logger,
		cfg.GetMaxFileSize(),
	)

	// Router
	router := handler.NewRouter(parseHandler, container.Logger, handler.RouterOptions{
		AllowedOrigins: cfg.GetAllowedOrigins(),
		RateLimiter:    handler.NewRateLimiter(cfg.GetRateLimitRPS(), cfg.GetRateLimitBurst()),
	})

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"max_file_size", cfg.GetMaxFileSize(),
			"allowed_origins", cfg.GetAllowedOrigins(),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.GetShutdownTimeoutSeconds())*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
