package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shenikar/occurrence_reporting_system/internal/config"
	"github.com/sirupsen/logrus"
)

// migrationURL переводит DSN postgres:// в схему драйвера pgx5://
func migrationURL(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "pgx5://"):
		return dsn
	case strings.HasPrefix(dsn, "postgresql://"):
		return strings.Replace(dsn, "postgresql://", "pgx5://", 1)
	default:
		return strings.Replace(dsn, "postgres://", "pgx5://", 1)
	}
}

// RunMigrations применяет миграции из cfg.MigrationsPath
func RunMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.WithField("source", cfg.MigrationsPath).Info("Running database migrations...")

	m, err := migrate.New(cfg.MigrationsPath, migrationURL(cfg.DatabaseURL))
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}
