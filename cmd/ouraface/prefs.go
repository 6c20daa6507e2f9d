package main

import (
	"fmt"
	"os"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ouraface/internal/timefmt"
	"github.com/garrettladley/ouraface/internal/xslog"
)

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show persisted preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			logger := xslog.NewLogger(os.Stderr, cfg.LogLevel)

			backend, err := openBackend(ctx, cfg, false, logger)
			if err != nil {
				return err
			}
			defer closeBackend(ctx, backend, logger)

			store, err := loadSettings(ctx, backend, logger)
			if err != nil {
				return err
			}
			snapshot, err := store.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("failed to read preferences: %w", err)
			}

			out, err := go_json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal preferences: %w", err)
			}
			fmt.Println(string(out))

			p := store.Get()
			fmt.Printf("\nrows: %d  date: %s  theme: %s  refresh: every %dm\n",
				p.Rows, timefmt.Describe(p.DateFormat), p.ThemeMode, p.RefreshMinutes)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete every persisted preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			logger := xslog.NewLogger(os.Stderr, cfg.LogLevel)

			backend, err := openBackend(ctx, cfg, false, logger)
			if err != nil {
				return err
			}
			defer closeBackend(ctx, backend, logger)

			store, err := loadSettings(ctx, backend, logger)
			if err != nil {
				return err
			}
			if err := store.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset preferences: %w", err)
			}
			fmt.Println("Preferences reset")
			return nil
		},
	})
	return cmd
}
