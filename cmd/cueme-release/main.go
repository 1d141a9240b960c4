package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	assumeYes bool
)

var rootCmd = &cobra.Command{
	Use:   "cueme-release",
	Short: "cueme-release - Prepare and publish CueMe release tags",
	Long: `Release preparation for the CueMe desktop app.

Validates the repository state, syncs the target version into package.json,
builds the app, verifies the build artifacts, commits the version bump, and
pushes an annotated version tag for the CI pipeline to pick up.

EXAMPLES:
Prepare and publish a release:
  cueme-release release v1.2.3

Dry-run the preflight checks:
  cueme-release check v1.2.3

Unattended release (answers yes to every prompt):
  cueme-release release v1.2.3 --yes`,
	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand - show help
		_ = cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to the release config file (default: .cueme-release.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false,
		"answer yes to every confirmation prompt")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
