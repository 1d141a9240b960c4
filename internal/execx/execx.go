// Package execx runs external commands behind a small Runner interface so
// the release workflow can be exercised in tests without touching git or
// the build toolchain.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result is the structured outcome of one command invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a single external command to completion. A non-zero exit
// is reported through Result.ExitCode, not through the error; the error is
// reserved for commands that could not be started at all (binary missing,
// context canceled, and so on).
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec, inheriting the environment.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}
