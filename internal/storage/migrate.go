package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies the bundled schema to the database at connStr and
// returns the schema version before and after. It uses its own connection
// because closing the migrator closes the underlying pool.
func RunMigrations(connStr string) (preVersion uint, postVersion uint, err error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return 0, 0, fmt.Errorf("open migration database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, 0, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, 0, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	preVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, 0, fmt.Errorf("read schema version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preVersion, 0, fmt.Errorf("run migrations: %w", err)
	}

	postVersion, _, err = m.Version()
	if err != nil {
		return preVersion, 0, fmt.Errorf("read schema version: %w", err)
	}

	return preVersion, postVersion, nil
}
