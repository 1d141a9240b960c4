package release

import (
	"context"
	"fmt"

	"github.com/cueme/release-tools/internal/semver"
)

// Check runs the read-only preflight: branch, working tree, manifest state,
// and tag existence. It mutates nothing and prompts for nothing. The error
// is non-nil exactly when a release of the same version would fail its
// non-interactive preconditions.
func (p *Preparer) Check(ctx context.Context, v semver.Version) error {
	branch, err := p.Git.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if branch == p.Branch {
		p.Printer.OK("on branch %s", branch)
	} else {
		// Soft in the release flow (interactive override), so soft here too.
		p.Printer.Warn("on branch %q, expected %q; release will ask for confirmation", branch, p.Branch)
	}

	dirty, err := p.Git.DirtyPaths(ctx)
	if err != nil {
		return err
	}
	if len(dirty) > 0 {
		for _, path := range dirty {
			p.Printer.Fail("uncommitted: %s", path)
		}
		return &PreconditionError{
			Reason: fmt.Sprintf("working tree has %d uncommitted change(s)", len(dirty)),
			Paths:  dirty,
		}
	}
	p.Printer.OK("working tree clean")

	current, err := p.Manifest.CurrentVersion()
	if err != nil {
		return err
	}
	if current == v.ManifestForm() {
		p.Printer.Skip("manifest already at %s; release will skip the bump commit", current)
	} else {
		p.Printer.Info("manifest at %s; release will bump to %s", current, v.ManifestForm())
	}

	exists, err := p.Git.TagExists(ctx, v.TagName())
	if err != nil {
		return err
	}
	if exists {
		p.Printer.Warn("tag %s already exists; release will ask before recreating it", v.TagName())
	} else {
		p.Printer.OK("tag %s is free", v.TagName())
	}

	return nil
}
