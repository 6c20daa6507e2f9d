package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"

	"github.com/garrettladley/ouraface/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := tuiCmd()
	rootCmd.Version = version.Get()

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(prefsCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
