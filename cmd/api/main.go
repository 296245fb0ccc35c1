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

	_ "github.com/nguyenqkhai/Estimate-Price-House-v3/docs"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/artifacts"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/config"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/handlers"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/telemetry"
)

func main() {
	startedAt := time.Now()
	log.Println("Starting Health Reporting Service...")

	cfg := config.Load()
	log.Printf("Configuration:")
	log.Printf("  MODEL_PATH: %s", cfg.ModelPath)
	log.Printf("  ENCODER_PATH: %s", cfg.EncoderPath)
	log.Printf("  API_PORT: %s", cfg.APIPort)

	bundle := artifacts.Load(cfg.ModelPath, cfg.EncoderPath)
	metrics := telemetry.NewMetrics("api")

	reporter := telemetry.NewStatusReporter(cfg.StatusReportCron, bundle, metrics)
	if err := reporter.Start(); err != nil {
		log.Fatalf("Failed to start status reporter: %v", err)
	}

	health := handlers.NewHealthHandler(bundle, config.Version, startedAt)
	router := handlers.NewAPIRouter(health, metrics)

	srv := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	go func() {
		log.Printf("Health API listening on :%s", cfg.APIPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// --- Graceful Shutdown Handling ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Health Reporting Service is shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reporter.Stop()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Health Reporting Service stopped gracefully.")
}
