// Package release implements the release-preparation workflow: preflight
// checks, manifest version sync, build verification, the bump commit, and
// tag creation/publication. Every external command runs exactly once; the
// only recoverable branches are the documented skips.
package release

import (
	"context"
	"fmt"

	"github.com/cueme/release-tools/internal/buildcheck"
	"github.com/cueme/release-tools/internal/gitx"
	"github.com/cueme/release-tools/internal/manifest"
	"github.com/cueme/release-tools/internal/semver"
	"github.com/cueme/release-tools/internal/ui"
)

// PreconditionError reports a repository state that blocks the release:
// wrong branch declined by the operator, or a dirty working tree.
type PreconditionError struct {
	Reason string
	Paths  []string // offending paths for the dirty-tree case
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// Preparer runs the release workflow. All collaborators are injected so the
// whole flow is testable with a scripted runner and confirmer.
type Preparer struct {
	Git      *gitx.Client
	Manifest *manifest.Updater
	Builder  *buildcheck.Builder
	Confirm  ui.Confirmer
	Printer  *ui.Printer

	Branch      string // expected release branch
	ActionsURL  string // where to watch the downstream CI build
	ReleasesURL string // where the published artifact appears
}

// Outcome records which steps ran and which were skipped as no-ops.
type Outcome struct {
	Version         semver.Version
	PreviousVersion string
	VersionWritten  bool
	Committed       bool
	TagCreated      bool
	TagRecreated    bool
	Pushed          bool
}

// NoOp reports whether the run changed nothing: version already current and
// the tag left as-is.
func (o *Outcome) NoOp() bool {
	return !o.VersionWritten && !o.Committed && !o.TagCreated
}

// Run executes the workflow for the target version. It returns an Outcome
// on success (including no-op runs) or the first error encountered; there
// is no rollback of steps that already completed.
func (p *Preparer) Run(ctx context.Context, v semver.Version) (*Outcome, error) {
	out := &Outcome{Version: v}

	branch, err := p.checkBranch(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.checkCleanTree(ctx); err != nil {
		return nil, err
	}
	if err := p.syncVersion(v, out); err != nil {
		return nil, err
	}
	if err := p.buildAndVerify(ctx); err != nil {
		return nil, err
	}
	if err := p.commitBump(ctx, v, out); err != nil {
		return nil, err
	}
	if err := p.tagAndPush(ctx, v, branch, out); err != nil {
		return nil, err
	}

	p.summarize(out)
	return out, nil
}

// checkBranch returns the current branch name, prompting for confirmation
// when it differs from the expected release branch.
func (p *Preparer) checkBranch(ctx context.Context) (string, error) {
	branch, err := p.Git.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	if branch == p.Branch {
		p.Printer.OK("on branch %s", branch)
		return branch, nil
	}

	p.Printer.Warn("on branch %q, releases normally start from %q", branch, p.Branch)
	ok, err := p.Confirm.Confirm(fmt.Sprintf("Release from branch %q anyway?", branch))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &PreconditionError{Reason: fmt.Sprintf("aborted: on branch %q, expected %q", branch, p.Branch)}
	}
	return branch, nil
}

func (p *Preparer) checkCleanTree(ctx context.Context) error {
	dirty, err := p.Git.DirtyPaths(ctx)
	if err != nil {
		return err
	}
	if len(dirty) > 0 {
		for _, path := range dirty {
			p.Printer.Fail("uncommitted: %s", path)
		}
		return &PreconditionError{
			Reason: fmt.Sprintf("working tree has %d uncommitted change(s); commit or stash them first", len(dirty)),
			Paths:  dirty,
		}
	}
	p.Printer.OK("working tree clean")
	return nil
}

func (p *Preparer) syncVersion(v semver.Version, out *Outcome) error {
	current, err := p.Manifest.CurrentVersion()
	if err != nil {
		return err
	}
	out.PreviousVersion = current

	if current == v.ManifestForm() {
		p.Printer.Skip("manifest already at %s, version write skipped", current)
		return nil
	}

	if err := p.Manifest.WriteVersion(v.ManifestForm()); err != nil {
		return err
	}
	out.VersionWritten = true
	p.Printer.OK("manifest version %s -> %s", current, v.ManifestForm())
	return nil
}

func (p *Preparer) buildAndVerify(ctx context.Context) error {
	p.Printer.Info("running build")
	if err := p.Builder.Build(ctx); err != nil {
		return err
	}
	if err := p.Builder.VerifyArtifacts(); err != nil {
		return err
	}
	p.Printer.OK("build complete, artifacts verified")
	return nil
}

func (p *Preparer) commitBump(ctx context.Context, v semver.Version, out *Outcome) error {
	if !out.VersionWritten {
		p.Printer.Skip("version unchanged, bump commit skipped")
		return nil
	}

	if err := p.Git.Stage(ctx, p.Manifest.StagePaths()...); err != nil {
		return err
	}
	msg := "chore: bump version to " + v.TagName()
	if err := p.Git.Commit(ctx, msg); err != nil {
		return err
	}
	out.Committed = true
	p.Printer.OK("committed: %s", msg)
	return nil
}

func (p *Preparer) tagAndPush(ctx context.Context, v semver.Version, branch string, out *Outcome) error {
	tag := v.TagName()

	exists, err := p.Git.TagExists(ctx, tag)
	if err != nil {
		return err
	}

	if exists {
		p.Printer.Warn("tag %s already exists", tag)
		ok, err := p.Confirm.Confirm(fmt.Sprintf("Delete and recreate tag %s?", tag))
		if err != nil {
			return err
		}
		if !ok {
			p.Printer.Skip("tag %s left as-is, nothing pushed", tag)
			if out.Committed {
				p.Printer.Info("the bump commit was not pushed; push %s manually or rerun", branch)
			}
			return nil
		}

		if err := p.Git.DeleteLocalTag(ctx, tag); err != nil {
			return err
		}
		if err := p.Git.DeleteRemoteTag(ctx, tag); err != nil {
			return err
		}
		out.TagRecreated = true
	}

	if err := p.Git.CreateTag(ctx, tag, "Release "+tag); err != nil {
		return err
	}
	out.TagCreated = true
	p.Printer.OK("created tag %s", tag)

	if err := p.Git.PushBranch(ctx, branch); err != nil {
		return err
	}
	if err := p.Git.PushTag(ctx, tag); err != nil {
		return err
	}
	out.Pushed = true
	p.Printer.OK("pushed branch and tag")
	return nil
}

func (p *Preparer) summarize(out *Outcome) {
	if out.NoOp() {
		p.Printer.OK("nothing to do: %s is already released", out.Version.TagName())
		return
	}

	p.Printer.OK("release %s prepared", out.Version.TagName())
	if out.Pushed {
		p.Printer.Info("monitor the CI build at %s", p.ActionsURL)
		p.Printer.Info("the published artifact will appear at %s", p.ReleasesURL)
	}
}
