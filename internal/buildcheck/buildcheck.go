// Package buildcheck runs the project build and verifies that the expected
// artifact directories exist afterwards. A failing build command and a
// successful build with missing artifacts are distinct errors: the first
// means the toolchain rejected the build, the second means the build lied.
package buildcheck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cueme/release-tools/internal/execx"
)

// BuildError reports a build command that exited non-zero.
type BuildError struct {
	Command  string
	ExitCode int
	Output   string // tail of combined output, for the operator
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build command %q failed (exit %d)", e.Command, e.ExitCode)
}

// ArtifactError reports expected output directories missing after a build
// that reported success.
type ArtifactError struct {
	Missing []string
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("build succeeded but expected artifact directories are missing: %s",
		strings.Join(e.Missing, ", "))
}

// Builder runs one build command in a working directory and checks for the
// configured artifact directories.
type Builder struct {
	runner       execx.Runner
	dir          string
	command      string   // whitespace-separated argv, e.g. "npm run build"
	artifactDirs []string // relative to dir
}

func New(runner execx.Runner, dir, command string, artifactDirs []string) *Builder {
	return &Builder{runner: runner, dir: dir, command: command, artifactDirs: artifactDirs}
}

// Build invokes the build command exactly once. The command string is split
// on whitespace; shell quoting is not supported.
func (b *Builder) Build(ctx context.Context) error {
	argv := strings.Fields(b.command)
	if len(argv) == 0 {
		return fmt.Errorf("build command is empty")
	}

	res, err := b.runner.Run(ctx, b.dir, argv[0], argv[1:]...)
	if err != nil {
		return fmt.Errorf("running build command %q: %w", b.command, err)
	}
	if res.ExitCode != 0 {
		return &BuildError{
			Command:  b.command,
			ExitCode: res.ExitCode,
			Output:   outputTail(res.Stdout + res.Stderr),
		}
	}
	return nil
}

// VerifyArtifacts checks that every expected artifact directory exists.
func (b *Builder) VerifyArtifacts() error {
	var missing []string
	for _, d := range b.artifactDirs {
		path := d
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.dir, d)
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return &ArtifactError{Missing: missing}
	}
	return nil
}

// outputTail keeps the last few lines of build output for error reporting.
func outputTail(out string) string {
	const maxLines = 20
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}
