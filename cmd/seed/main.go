package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/config"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/database"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/geo"
)

func main() {
	if err := run(config.Load()); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed completed")
}

// run writes the built-in district/ward table to the configured reference database.
func run(cfg config.Config) error {
	if cfg.GeoDBDriver == "" {
		return errors.New("GEO_DB_DRIVER must be set to sqlite or postgres")
	}

	db, err := database.Connect(cfg.GeoDBDriver, cfg.GeoDBDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return geo.NewStore(db).Seed(ctx, geo.Builtin())
}
