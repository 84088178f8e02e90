package main

import (
	"context"
	"fmt"
	"os"

	"github.com/onebluedot/site/internal/repository"
	"github.com/onebluedot/site/internal/services"
	"github.com/onebluedot/site/pkg/config"
	"github.com/onebluedot/site/pkg/database"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, true)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := runMigrations(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	if cfg.SeedDefaults {
		setup := services.NewSetupService(db, repository.NewProjectRepository(db), repository.NewSettingsRepository(db))
		seeded, err := setup.SeedDefaults(ctx)
		if err != nil {
			log.Fatal("seeding failed", zap.Error(err))
		}
		log.Info("seed step finished", zap.Bool("seeded", seeded))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
