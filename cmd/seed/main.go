package main

import (
	"context"

	"github.com/shenikar/occurrence_reporting_system/internal/config"
	"github.com/shenikar/occurrence_reporting_system/internal/repository"
	"github.com/shenikar/occurrence_reporting_system/internal/seed"
	"github.com/shenikar/occurrence_reporting_system/pkg/logger"
	"github.com/shenikar/occurrence_reporting_system/pkg/postgres"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel)
	ctx := context.Background()

	if err := postgres.RunMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	seeder := seed.NewSeeder(
		repository.NewMunicipalityRepository(dbpool),
		repository.NewVehicleRepository(dbpool),
		repository.NewUserRepository(dbpool),
		log,
	)
	if err := seeder.Run(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Info("Seed completed")
}
