// Package semver parses the strict vMAJOR.MINOR.PATCH version strings used
// for CueMe release tags. Pre-release and build metadata are not allowed:
// the tag name doubles as the manifest version with the "v" stripped, and
// the manifest field must stay a plain triple.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
)

var versionPattern = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)

// Version is a parsed release version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse validates s against ^v\d+\.\d+\.\d+$ and returns the parsed version.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q: expected vMAJOR.MINOR.PATCH (e.g. v1.2.3)", s)
	}

	// The pattern guarantees digits; Atoi can only fail on overflow.
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// TagName returns the git tag form, e.g. "v1.2.3".
func (v Version) TagName() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ManifestForm returns the package manifest form, e.g. "1.2.3".
// Invariant: ManifestForm() == TagName() without the leading "v".
func (v Version) ManifestForm() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) String() string {
	return v.TagName()
}
