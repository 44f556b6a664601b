package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
)

// ResolveMigrationsDir returns the first existing directory among explicit,
// MIGRATIONS_PATH and the conventional locations.
func ResolveMigrationsDir(explicit string) (string, error) {
	candidates := []string{
		strings.TrimSpace(explicit),
		strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, MIGRATIONS_PATH, ./db/migrations, /app/db/migrations)")
}

// NewMigrator opens a file-sourced migrator against dbURL.
func NewMigrator(dbURL, migrationsDir string) (*migrate.Migrate, error) {
	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return nil, fmt.Errorf("create migrator (source=%s): %w", sourceURL, err)
	}
	return m, nil
}

// CloseMigrator releases both ends of the migrator and logs failures.
func CloseMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func migrateUp(dbURL, explicitDir string, logger *logging.Logger) error {
	dir, err := ResolveMigrationsDir(explicitDir)
	if err != nil {
		return err
	}
	m, err := NewMigrator(dbURL, dir)
	if err != nil {
		return err
	}
	defer CloseMigrator(m, logger)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migration changes", "dir", dir)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied", "dir", dir)
	return nil
}
