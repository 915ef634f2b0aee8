package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/mysql" // migrate mysql driver
	_ "github.com/golang-migrate/migrate/v4/source/file"    // migrate file source
)

// RunMigrations applies all pending migrations from sourceURL (a file:// path)
// against the database at databaseURL (mysql://... DSN).
// migrate.ErrNoChange is not treated as a failure.
func RunMigrations(sourceURL, databaseURL string) error {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}
