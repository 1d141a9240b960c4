// Package gitx wraps the git operations the release workflow needs. Every
// method issues exactly one git command through the injected runner and
// never retries; a non-zero exit surfaces as *OperationError.
package gitx

import (
	"context"
	"fmt"
	"strings"

	"github.com/cueme/release-tools/internal/execx"
)

// OperationError reports a git command that exited non-zero.
type OperationError struct {
	Op       string // short operation name, e.g. "commit", "push tag"
	ExitCode int
	Stderr   string
}

func (e *OperationError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("git %s failed (exit %d)", e.Op, e.ExitCode)
	}
	return fmt.Sprintf("git %s failed (exit %d): %s", e.Op, e.ExitCode, msg)
}

// Client issues git commands in a fixed working directory against a fixed
// remote.
type Client struct {
	runner execx.Runner
	dir    string
	remote string
}

func New(runner execx.Runner, dir, remote string) *Client {
	return &Client{runner: runner, dir: dir, remote: remote}
}

func (c *Client) run(ctx context.Context, op string, args ...string) (execx.Result, error) {
	res, err := c.runner.Run(ctx, c.dir, "git", args...)
	if err != nil {
		return res, fmt.Errorf("running git %s: %w", op, err)
	}
	if res.ExitCode != 0 {
		return res, &OperationError{Op: op, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "rev-parse", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// DirtyPaths returns the paths with staged, unstaged, or untracked changes.
// An empty slice means the working tree is clean.
func (c *Client) DirtyPaths(ctx context.Context) ([]string, error) {
	res, err := c.run(ctx, "status", "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		// Porcelain v1: two status columns, a space, then the path.
		if len(line) > 3 {
			paths = append(paths, strings.TrimSpace(line[3:]))
		}
	}
	return paths, nil
}

// TagExists reports whether a local tag with the exact name exists.
func (c *Client) TagExists(ctx context.Context, tag string) (bool, error) {
	res, err := c.run(ctx, "tag list", "tag", "--list", tag)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(res.Stdout) != "", nil
}

// Stage stages exactly the given paths.
func (c *Client) Stage(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := c.run(ctx, "add", args...)
	return err
}

// Commit creates a commit from the staged changes.
func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.run(ctx, "commit", "commit", "-m", message)
	return err
}

// CreateTag creates an annotated tag at HEAD.
func (c *Client) CreateTag(ctx context.Context, tag, message string) error {
	_, err := c.run(ctx, "tag", "tag", "-a", tag, "-m", message)
	return err
}

// DeleteLocalTag removes the tag from the local repository.
func (c *Client) DeleteLocalTag(ctx context.Context, tag string) error {
	_, err := c.run(ctx, "tag delete", "tag", "-d", tag)
	return err
}

// DeleteRemoteTag removes the tag ref from the remote.
func (c *Client) DeleteRemoteTag(ctx context.Context, tag string) error {
	_, err := c.run(ctx, "push (delete tag)", "push", c.remote, ":refs/tags/"+tag)
	return err
}

// PushBranch pushes the branch to the remote.
func (c *Client) PushBranch(ctx context.Context, branch string) error {
	_, err := c.run(ctx, "push branch", "push", c.remote, branch)
	return err
}

// PushTag pushes the tag to the remote.
func (c *Client) PushTag(ctx context.Context, tag string) error {
	_, err := c.run(ctx, "push tag", "push", c.remote, tag)
	return err
}
