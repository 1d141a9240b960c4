// Package manifest reads and rewrites the version field of the project
// manifest (package.json) and its companion lockfile. Rewrites are in-place
// field edits so the rest of the file keeps its existing formatting.
package manifest

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Updater targets a manifest and an optional companion lockfile.
type Updater struct {
	ManifestPath string
	LockfilePath string // empty or missing file means no lockfile to touch
}

// CurrentVersion returns the manifest's version field.
func (u *Updater) CurrentVersion() (string, error) {
	data, err := os.ReadFile(u.ManifestPath)
	if err != nil {
		return "", fmt.Errorf("reading manifest: %w", err)
	}

	v := gjson.GetBytes(data, "version")
	if !v.Exists() {
		return "", fmt.Errorf("manifest %s has no version field", u.ManifestPath)
	}
	return v.String(), nil
}

// WriteVersion sets the version field in the manifest and, when the lockfile
// exists, its top-level version field as well. The files are otherwise left
// byte-for-byte unchanged.
func (u *Updater) WriteVersion(version string) error {
	if err := setVersionField(u.ManifestPath, version); err != nil {
		return fmt.Errorf("updating manifest: %w", err)
	}

	if u.LockfilePath == "" {
		return nil
	}
	if _, err := os.Stat(u.LockfilePath); os.IsNotExist(err) {
		return nil
	}
	if err := setVersionField(u.LockfilePath, version); err != nil {
		return fmt.Errorf("updating lockfile: %w", err)
	}
	return nil
}

// StagePaths returns the files a version-bump commit should stage: the
// manifest, plus the lockfile when one is present on disk.
func (u *Updater) StagePaths() []string {
	paths := []string{u.ManifestPath}
	if u.LockfilePath != "" {
		if _, err := os.Stat(u.LockfilePath); err == nil {
			paths = append(paths, u.LockfilePath)
		}
	}
	return paths
}

func setVersionField(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	updated, err := sjson.SetBytes(data, "version", version)
	if err != nil {
		return fmt.Errorf("setting version field: %w", err)
	}

	return os.WriteFile(path, updated, info.Mode().Perm())
}
