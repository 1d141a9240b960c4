package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cueme/release-tools/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cueme-release version %s\n", buildinfo.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
