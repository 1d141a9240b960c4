package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cueme/release-tools/internal/buildcheck"
	"github.com/cueme/release-tools/internal/gitx"
	"github.com/cueme/release-tools/internal/release"
	"github.com/cueme/release-tools/internal/ui"
)

func TestReportFailureDistinguishesErrorClasses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"build failure",
			&buildcheck.BuildError{Command: "npm run build", ExitCode: 1},
			`build command "npm run build" failed`,
		},
		{
			"missing artifacts",
			&buildcheck.ArtifactError{Missing: []string{"dist-electron"}},
			"build succeeded but expected artifact directories are missing",
		},
		{
			"precondition",
			&release.PreconditionError{Reason: "working tree has 2 uncommitted change(s); commit or stash them first"},
			"uncommitted change",
		},
		{
			"git operation",
			&gitx.OperationError{Op: "push tag", ExitCode: 128, Stderr: "fatal: remote unreachable"},
			"git push tag failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportFailure(ui.NewPrinter(&buf), tt.err)

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
			if !strings.Contains(out, ui.IconFail) {
				t.Errorf("output %q missing failure glyph", out)
			}
		})
	}
}

func TestReportFailureBuildAndArtifactMessagesDiffer(t *testing.T) {
	var buildOut, artOut bytes.Buffer
	reportFailure(ui.NewPrinter(&buildOut), &buildcheck.BuildError{Command: "npm run build", ExitCode: 1})
	reportFailure(ui.NewPrinter(&artOut), &buildcheck.ArtifactError{Missing: []string{"dist"}})

	if buildOut.String() == artOut.String() {
		t.Error("build failure and missing-artifact failure produce identical output")
	}
}
