package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	appconfig "github.com/yang-jeongman/snapmobile/internal/config"
	"github.com/yang-jeongman/snapmobile/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the correction database schema to the latest
version.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}

	slog.Info("Starting database migration", "database", cfg.DBPath)

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("Database migrated", "version", storage.ExpectedSchemaVersion)
	return nil
}
