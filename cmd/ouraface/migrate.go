package main

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ouraface/internal/migrations"
	"github.com/garrettladley/ouraface/internal/migrations/postgres"
	"github.com/garrettladley/ouraface/internal/storage"
)

func migrateCmd() *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending preference store migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			dsn, err := cfg.StoreDSN()
			if err != nil {
				return err
			}

			var status []migrations.Migration
			switch cfg.Store.Driver {
			case storage.DriverSQLite:
				db, err := sql.Open("sqlite3", dsn)
				if err != nil {
					return fmt.Errorf("failed to open database: %w", err)
				}
				defer func() { _ = db.Close() }()

				if !statusOnly {
					if err := migrations.Apply(ctx, db); err != nil {
						return err
					}
				}
				if status, err = migrations.Status(ctx, db); err != nil {
					return err
				}
			case storage.DriverPostgres:
				pool, err := pgxpool.New(ctx, dsn)
				if err != nil {
					return fmt.Errorf("failed to connect: %w", err)
				}
				defer pool.Close()

				if !statusOnly {
					if err := postgres.Apply(ctx, pool); err != nil {
						return err
					}
				}
				if status, err = postgres.Status(ctx, pool); err != nil {
					return err
				}
			default:
				fmt.Printf("%s store has no schema\n", cfg.Store.Driver)
				return nil
			}

			for _, m := range status {
				mark := " "
				if m.Applied {
					mark = "x"
				}
				fmt.Printf("[%s] %s\n", mark, m.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "only report which migrations have run")
	return cmd
}
