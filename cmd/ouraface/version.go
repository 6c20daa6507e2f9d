package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/ouraface/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(version.Long())
		},
	}
}
