// Package migrator applies each bounded context's embedded goose migrations.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"

	"github.com/ghuser/packstack/pkg/logger"
)

// VersionTable is the goose bookkeeping table for service. Each bounded
// context versions its schema independently.
func VersionTable(service string) string {
	return service + "_goose_db_version"
}

// Run applies all pending migrations in files for service against dbURL.
func Run(ctx context.Context, dbURL, service string, files fs.FS, log logger.Logger) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	store, err := database.NewStore(database.DialectPostgres, VersionTable(service))
	if err != nil {
		return fmt.Errorf("create goose store: %w", err)
	}
	provider, err := goose.NewProvider("", db, files, goose.WithStore(store))
	if err != nil {
		return fmt.Errorf("create goose provider for %s: %w", service, err)
	}

	results, err := provider.Up(ctx)
	for _, r := range results {
		log.Info("migration applied",
			"service", service,
			"version", r.Source.Version,
			"file", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", service, err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("read %s schema version: %w", service, err)
	}
	log.Info("migrations up to date", "service", service, "version", version, "applied", len(results))
	return nil
}
