// Package commands implements the tooling subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskvault/taskvault/infrastructure/postgresdb"
)

// migrateTimeout bounds a full migration run.
const migrateTimeout = 5 * time.Minute

// Migrate creates the schema in the database.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	log.InfoContext(ctx, "migration started", "step", "checking database status")

	if err := postgresdb.StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("database status check failed: %w", err)
	}

	log.InfoContext(ctx, "database status check successful", "step", "running migrations")

	if err := postgresdb.Migrate(ctx, pool, log); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}

// Status prints every applied migration to w.
func Status(ctx context.Context, pool *pgxpool.Pool, w io.Writer) error {
	applied, err := postgresdb.AppliedMigrations(ctx, pool)
	if err != nil {
		return fmt.Errorf("list applied migrations: %w", err)
	}

	if len(applied) == 0 {
		fmt.Fprintln(w, "no migrations applied")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tCHECKSUM\tAPPLIED AT")
	for _, m := range applied {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Version, m.Checksum[:12], m.AppliedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}
