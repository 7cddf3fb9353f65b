package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/cmd/zazzctl/ui"
	"github.com/zazzlife/zazz-api/internal/config"
	"github.com/zazzlife/zazz-api/internal/database"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, db *bun.DB) error {
				applied, err := database.Migrate(ctx, db.DB)
				if err != nil {
					return err
				}
				ui.PrintApplied(applied)
				return nil
			})
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, db *bun.DB) error {
				states, err := database.MigrationStatus(ctx, db.DB)
				if err != nil {
					return err
				}
				ui.PrintMigrationStatus(states)
				return nil
			})
		},
	}

	migrateCmd.AddCommand(upCmd, statusCmd)
	return migrateCmd
}

// withDB loads the database settings from the environment and runs fn
// with an open connection
func withDB(ctx context.Context, fn func(ctx context.Context, db *bun.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db)
}

func printError(err error) {
	ui.PrintError(err.Error())
}
