package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cueme/release-tools/internal/buildcheck"
	"github.com/cueme/release-tools/internal/config"
	"github.com/cueme/release-tools/internal/execx"
	"github.com/cueme/release-tools/internal/gitx"
	"github.com/cueme/release-tools/internal/manifest"
	"github.com/cueme/release-tools/internal/release"
	"github.com/cueme/release-tools/internal/semver"
	"github.com/cueme/release-tools/internal/ui"
)

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Bump the version, build, tag, and push",
	Long: `Run the full release workflow for the given version (vX.Y.Z form):

1. Verify the current branch and a clean working tree.
2. Write the version into package.json (skipped if already set).
3. Build the app and verify the dist/ and dist-electron/ output.
4. Commit the version bump (skipped if nothing changed).
5. Create the annotated tag and push the branch and tag.

The run is idempotent: re-running with the same version reports the
redundant steps as skipped and exits 0.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printer := ui.NewPrinter(os.Stdout)

		v, err := semver.Parse(args[0])
		if err != nil {
			printer.Fail("%v", err)
			os.Exit(1)
		}

		prep, _, err := newPreparer(printer)
		if err != nil {
			printer.Fail("%v", err)
			os.Exit(1)
		}

		if _, err := prep.Run(cmd.Context(), v); err != nil {
			reportFailure(printer, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}

// newPreparer wires the workflow against the real git, build toolchain, and
// terminal, honoring --config and --yes.
func newPreparer(printer *ui.Printer) (*release.Preparer, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("determining working directory: %w", err)
	}

	cfg, err := config.Load(cwd, cfgPath)
	if err != nil {
		return nil, nil, err
	}

	var confirm ui.Confirmer = ui.NewTerminalConfirmer()
	if assumeYes {
		confirm = ui.StaticConfirmer(true)
	}

	runner := execx.ExecRunner{}
	prep := &release.Preparer{
		Git:         gitx.New(runner, cwd, cfg.Remote),
		Manifest:    &manifest.Updater{ManifestPath: cfg.Manifest, LockfilePath: cfg.Lockfile},
		Builder:     buildcheck.New(runner, cwd, cfg.BuildCommand, cfg.ArtifactDirs),
		Confirm:     confirm,
		Printer:     printer,
		Branch:      cfg.Branch,
		ActionsURL:  cfg.ActionsURL,
		ReleasesURL: cfg.ReleasesURL,
	}
	return prep, cfg, nil
}

// reportFailure prints one ✗ line per failure with the most useful detail
// for each error class.
func reportFailure(printer *ui.Printer, err error) {
	var buildErr *buildcheck.BuildError
	var artErr *buildcheck.ArtifactError
	var precond *release.PreconditionError
	var opErr *gitx.OperationError

	switch {
	case errors.As(err, &buildErr):
		printer.Fail("%v", buildErr)
		if buildErr.Output != "" {
			fmt.Fprintln(os.Stderr, buildErr.Output)
		}
	case errors.As(err, &artErr):
		printer.Fail("%v", artErr)
		printer.Info("the build command reported success; check its output paths")
	case errors.As(err, &precond):
		printer.Fail("%v", precond)
	case errors.As(err, &opErr):
		printer.Fail("%v", opErr)
	default:
		printer.Fail("%v", err)
	}
}
