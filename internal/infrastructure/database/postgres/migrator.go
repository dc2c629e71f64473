package postgres

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // Postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // File source driver
)

// sourceURL normalises a migrations location into the source URL migrate.New
// expects.  Bare filesystem paths (the config default "migrations") get the
// file:// scheme; values that already carry a scheme pass through unchanged.
func sourceURL(migrationsPath string) string {
	if strings.Contains(migrationsPath, "://") {
		return migrationsPath
	}
	return "file://" + migrationsPath
}

// ─────────────────────────────────────────────────────────────────────────────
// RunMigrations — apply all pending migrations
// ─────────────────────────────────────────────────────────────────────────────

// RunMigrations executes all pending schema migrations from migrationsPath
// (a directory path or a file:// URL) against dbURL.  Called during
// application startup; returns nil when the schema is already current.
func RunMigrations(dbURL string, migrationsPath string) error {
	m, err := migrate.New(sourceURL(migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if stderrors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// RollbackMigration — rollback migrations by specified steps
// ─────────────────────────────────────────────────────────────────────────────

// RollbackMigration rolls the schema back by the given number of steps.
// Intended for development and test environments.
func RollbackMigration(dbURL string, migrationsPath string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be greater than 0, got %d", steps)
	}

	m, err := migrate.New(sourceURL(migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil {
		if stderrors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("no migrations to roll back")
		}
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// MigrationVersion — report current schema version
// ─────────────────────────────────────────────────────────────────────────────

// MigrationVersion returns the current schema version and whether the last
// migration left the schema dirty.  A fresh database reports version 0.
func MigrationVersion(dbURL string, migrationsPath string) (uint, bool, error) {
	m, err := migrate.New(sourceURL(migrationsPath), dbURL)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil {
		if stderrors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, dirty, nil
}

//Personal.AI order the ending
