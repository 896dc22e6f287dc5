package db

import (
	"context"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies all pending goose migrations found in migrations.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) error {
	return withGoose(pool, migrations, func(run gooseRunner) error {
		return run.up(ctx)
	})
}

// RollbackMigration reverts the most recent migration.
func RollbackMigration(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) error {
	return withGoose(pool, migrations, func(run gooseRunner) error {
		return run.down(ctx)
	})
}

// MigrationStatus logs the applied/pending state of every migration.
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) error {
	return withGoose(pool, migrations, func(run gooseRunner) error {
		return run.status(ctx)
	})
}

type gooseRunner struct {
	up     func(ctx context.Context) error
	down   func(ctx context.Context) error
	status func(ctx context.Context) error
}

func withGoose(pool *pgxpool.Pool, migrations fs.FS, fn func(gooseRunner) error) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return fn(gooseRunner{
		up:     func(ctx context.Context) error { return goose.UpContext(ctx, sqlDB, ".") },
		down:   func(ctx context.Context) error { return goose.DownContext(ctx, sqlDB, ".") },
		status: func(ctx context.Context) error { return goose.StatusContext(ctx, sqlDB, ".") },
	})
}
