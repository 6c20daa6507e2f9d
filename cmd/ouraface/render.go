package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/ouraface/internal/companion"
	"github.com/garrettladley/ouraface/internal/face"
	"github.com/garrettladley/ouraface/internal/surface/raster"
	"github.com/garrettladley/ouraface/internal/surface/term"
	"github.com/garrettladley/ouraface/internal/timer"
	"github.com/garrettladley/ouraface/internal/xslog"
)

func renderCmd() *cobra.Command {
	var (
		feedPath  string
		outPath   string
		at        string
		settle    time.Duration
		braille   bool
		ephemeral bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Replay a feed and snapshot the face",
		Long:  "Replays companion messages against a simulated clock and writes the resulting frame as a PNG or braille text. \"wait <duration>\" feed lines advance the clock.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			logger := xslog.NewLogger(os.Stderr, cfg.LogLevel)

			start := time.Now()
			if at != "" {
				start, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("failed to parse --at: %w", err)
				}
			}

			backend, err := openBackend(ctx, cfg, ephemeral, logger)
			if err != nil {
				return err
			}
			defer closeBackend(ctx, backend, logger)

			prefs, err := loadSettings(ctx, backend, logger)
			if err != nil {
				return err
			}

			var entries []companion.Entry
			if feedPath != "" {
				f, err := os.Open(feedPath)
				if err != nil {
					return fmt.Errorf("failed to open feed: %w", err)
				}
				entries, err = companion.ReadAll(ctx, f, logger)
				_ = f.Close()
				if err != nil {
					return err
				}
			}

			fc := faceConfig(cfg)
			surf, err := raster.New(fc.Screen)
			if err != nil {
				return err
			}
			clock := timer.NewManual(start)
			wf := face.New(fc, face.Deps{
				Surface:   surf,
				Settings:  prefs,
				Scheduler: clock,
				Outbox:    companion.NewOutbox(os.Stderr),
				Logger:    logger,
			})
			wf.Start(ctx)
			defer wf.Close()

			advance := func(d time.Duration) {
				clock.Advance(d)
				wf.HandleTick(ctx, clock.Now())
			}
			for _, e := range entries {
				if e.Wait > 0 {
					advance(e.Wait)
					continue
				}
				wf.HandleMessage(ctx, e.Message)
			}
			if settle > 0 {
				advance(settle)
			}

			logger.DebugContext(ctx, "replayed feed",
				xslog.Count(len(entries)),
				slog.Time("clock", clock.Now()),
			)

			if braille {
				fmt.Println(term.Braille(surf.Render(), surf.WindowBackground()))
			}
			if outPath == "" {
				return nil
			}
			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			if err := surf.EncodePNG(out); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			logger.InfoContext(ctx, "wrote frame", xslog.Path(outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&feedPath, "feed", "", "JSON-lines file of companion messages")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "PNG output path")
	cmd.Flags().StringVar(&at, "at", "", "simulated start time (RFC 3339, default now)")
	cmd.Flags().DurationVar(&settle, "settle", 0, "advance the clock after the feed")
	cmd.Flags().BoolVar(&braille, "braille", false, "print the frame as braille")
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", true, "keep preferences in memory only")
	return cmd
}
