package main

import (
	"context"
	"fmt"
	"io/fs"

	"beautycrm_backend/internal/bootstrap"
	"beautycrm_backend/migrations"
	"beautycrm_backend/platform/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}
	cmd.AddCommand(
		migrateSubcommand("up", "Apply all pending migrations", db.RunMigrations),
		migrateSubcommand("down", "Roll back the most recent migration", db.RollbackMigration),
		migrateSubcommand("status", "Show applied and pending migrations", db.MigrationStatus),
	)
	return cmd
}

type migrationFunc func(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) error

func migrateSubcommand(use, short string, run migrationFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := bootstrap.ConnectDB(ctx, e.cfg, e.log)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			if err := run(ctx, pool, migrations.FS); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			e.log.Info("migration command complete", "command", use)
			return nil
		},
	}
}
