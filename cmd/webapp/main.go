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

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/artifacts"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/config"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/database"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/geo"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/handlers"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/telemetry"
)

// loadTable reads the district/ward table from the reference database when one
// is configured, falling back to the built-in table.
func loadTable(cfg config.Config) *geo.Table {
	if cfg.GeoDBDriver == "" {
		return geo.Builtin()
	}

	db, err := database.Connect(cfg.GeoDBDriver, cfg.GeoDBDSN)
	if err != nil {
		log.Printf("Warning: reference database unavailable, using built-in table: %v", err)
		return geo.Builtin()
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	table, err := geo.NewStore(db).LoadTable(ctx)
	if err != nil {
		log.Printf("Warning: could not load reference table, using built-in table: %v", err)
		return geo.Builtin()
	}
	log.Printf("Loaded %d districts from the %s reference database", table.Len(), cfg.GeoDBDriver)
	return table
}

func main() {
	log.Println("Starting House Price Estimator web app...")

	cfg := config.Load()
	log.Printf("Configuration:")
	log.Printf("  MODEL_PATH: %s", cfg.ModelPath)
	log.Printf("  ENCODER_PATH: %s", cfg.EncoderPath)
	log.Printf("  WEBAPP_PORT: %s", cfg.WebAppPort)
	log.Printf("  GEO_DB_DRIVER: %q", cfg.GeoDBDriver)

	bundle := artifacts.Load(cfg.ModelPath, cfg.EncoderPath)
	table := loadTable(cfg)

	metrics := telemetry.NewMetrics("webapp")
	metrics.SetModelLoaded(bundle.Loaded())

	router, err := handlers.NewWebAppRouter(handlers.NewWebApp(bundle, table, metrics), metrics)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.WebAppPort,
		Handler: router,
	}

	go func() {
		log.Printf("Web app listening on :%s", cfg.WebAppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// --- Graceful Shutdown Handling ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Web app is shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Web app stopped gracefully.")
}
