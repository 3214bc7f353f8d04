package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies the embedded migrations for the connection's dialect.
// Every migration is written to be safe against a pre-existing todos table.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	d := dialectFor(db.DriverName())

	fsys, err := fs.Sub(migrationsFS, d.migrations)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	provider, err := goose.NewProvider(d.goose, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, result := range results {
		zap.L().Info("applied migration",
			zap.Int64("version", result.Source.Version),
			zap.String("file", result.Source.Path),
			zap.Duration("duration", result.Duration),
		)
	}

	return nil
}
