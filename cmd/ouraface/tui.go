package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/ouraface/internal/companion"
	"github.com/garrettladley/ouraface/internal/face"
	"github.com/garrettladley/ouraface/internal/paths"
	"github.com/garrettladley/ouraface/internal/surface/term"
	"github.com/garrettladley/ouraface/internal/timer"
	"github.com/garrettladley/ouraface/internal/tui"
	"github.com/garrettladley/ouraface/internal/xslog"
)

const postBuffer = 16

func tuiCmd() *cobra.Command {
	var (
		feedPath   string
		outboxPath string
		ephemeral  bool
	)

	cmd := &cobra.Command{
		Use:   "ouraface",
		Short: "Oura health metrics on a simulated watch face",
		Long:  "Runs the watch face in the terminal. Companion messages are read as JSON lines from --feed and data requests are written to --outbox.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}

			logPath, err := paths.Log()
			if err != nil {
				return err
			}
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer func() { _ = logFile.Close() }()
			logger := xslog.NewLogger(logFile, cfg.LogLevel)
			ctx = xslog.WithLogger(ctx, logger)
			logger.InfoContext(ctx, "starting face", xslog.Version(), xslog.Driver(cfg.Store.Driver.String()))

			backend, err := openBackend(ctx, cfg, ephemeral, logger)
			if err != nil {
				return err
			}
			defer closeBackend(ctx, backend, logger)

			prefs, err := loadSettings(ctx, backend, logger)
			if err != nil {
				return err
			}

			outbox, err := openOutput(outboxPath)
			if err != nil {
				return err
			}
			defer func() { _ = outbox.Close() }()

			var feed *companion.Feed
			if feedPath != "" {
				f, err := os.Open(feedPath)
				if err != nil {
					return fmt.Errorf("failed to open feed: %w", err)
				}
				defer func() { _ = f.Close() }()
				feed = companion.NewFeed(f, logger)
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			queue := timer.NewQueue(postBuffer)
			defer queue.Stop()
			loop := timer.NewLoop(queue.Post)

			m, reg := newMetrics(cfg)
			var recorder face.Recorder
			if m != nil {
				recorder = m
			}

			fc := faceConfig(cfg)
			surf := term.New(fc.Screen)
			ticks := tui.NewTicker()
			wf := face.New(fc, face.Deps{
				Surface:   surf,
				Settings:  prefs,
				Scheduler: loop,
				Outbox:    companion.NewOutbox(outbox),
				Ticks:     ticks,
				Recorder:  recorder,
				Logger:    logger,
			})

			model := tui.New(tui.Deps{
				Ctx:     ctx,
				Face:    wf,
				Surface: surf,
				Posts:   queue.C(),
				Ticks:   ticks,
				Feed:    feed,
				Logger:  logger,
			})
			g, gctx := errgroup.WithContext(ctx)
			p := tea.NewProgram(&model, tea.WithContext(gctx))
			g.Go(func() error {
				defer cancel()
				if _, err := p.Run(); err != nil && gctx.Err() == nil {
					return fmt.Errorf("tui failed: %w", err)
				}
				return nil
			})
			if reg != nil {
				g.Go(func() error {
					return serveMetrics(gctx, cfg.MetricsAddr, reg, logger)
				})
			}

			err = g.Wait()
			wf.Close()
			logger.InfoContext(ctx, "face stopped", xslog.Path(logPath))
			return err
		},
	}

	cmd.Flags().StringVar(&feedPath, "feed", "", "JSON-lines file of companion messages")
	cmd.Flags().StringVar(&outboxPath, "outbox", "", "file that receives outbound requests (default discards)")
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "keep preferences in memory only")
	return cmd
}
