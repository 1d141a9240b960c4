package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cueme/release-tools/internal/semver"
	"github.com/cueme/release-tools/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <version>",
	Short: "Run the release preflight without changing anything",
	Long: `Run the read-only preflight for the given version: branch, working
tree, manifest state, and tag existence. Nothing is written, built, or
pushed. Exits 0 when a release of the same version would pass its
non-interactive preconditions.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		printer := ui.NewPrinter(os.Stdout)

		v, err := semver.Parse(args[0])
		if err != nil {
			printer.Fail("%v", err)
			os.Exit(1)
		}

		prep, cfg, err := newPreparer(printer)
		if err != nil {
			printer.Fail("%v", err)
			os.Exit(1)
		}

		fmt.Println(color.YellowString("CHECK ONLY - no changes will be made"))

		if verbose {
			dump, err := cfg.Dump()
			if err != nil {
				printer.Fail("%v", err)
				os.Exit(1)
			}
			fmt.Print(dump)
		}

		if err := prep.Check(cmd.Context(), v); err != nil {
			reportFailure(printer, err)
			os.Exit(1)
		}
		printer.OK("preflight passed for %s", v.TagName())
	},
}

func init() {
	checkCmd.Flags().Bool("verbose", false, "print the effective configuration")
	rootCmd.AddCommand(checkCmd)
}
