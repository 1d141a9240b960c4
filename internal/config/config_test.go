package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, want %q", cfg.Remote, "origin")
	}
	if cfg.Branch != "main" {
		t.Errorf("Branch = %q, want %q", cfg.Branch, "main")
	}
	if cfg.BuildCommand != "npm run build" {
		t.Errorf("BuildCommand = %q, want %q", cfg.BuildCommand, "npm run build")
	}
	if len(cfg.ArtifactDirs) != 2 || cfg.ArtifactDirs[0] != "dist" || cfg.ArtifactDirs[1] != "dist-electron" {
		t.Errorf("ArtifactDirs = %v, want [dist dist-electron]", cfg.ArtifactDirs)
	}
	if cfg.Manifest != "package.json" || cfg.Lockfile != "package-lock.json" {
		t.Errorf("Manifest/Lockfile = %q/%q, want package.json/package-lock.json", cfg.Manifest, cfg.Lockfile)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `branch: release
remote: upstream
build_command: pnpm build
artifact_dirs:
  - out
  - out-electron
`
	if err := os.WriteFile(filepath.Join(dir, ".cueme-release.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Branch != "release" {
		t.Errorf("Branch = %q, want %q", cfg.Branch, "release")
	}
	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want %q", cfg.Remote, "upstream")
	}
	if cfg.BuildCommand != "pnpm build" {
		t.Errorf("BuildCommand = %q, want %q", cfg.BuildCommand, "pnpm build")
	}
	if len(cfg.ArtifactDirs) != 2 || cfg.ArtifactDirs[0] != "out" {
		t.Errorf("ArtifactDirs = %v, want [out out-electron]", cfg.ArtifactDirs)
	}
	// Keys not in the file keep their defaults.
	if cfg.Manifest != "package.json" {
		t.Errorf("Manifest = %q, want default package.json", cfg.Manifest)
	}
}

func TestLoadExplicitPathMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing explicit config succeeded, want error")
	}
}

func TestDump(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out, err := cfg.Dump()
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	for _, want := range []string{"remote: origin", "branch: main", "build_command: npm run build"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %q:\n%s", want, out)
		}
	}
}
