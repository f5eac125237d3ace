package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// releaseTagPattern is the accepted shape of a release tag.
var releaseTagPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Version is a numeric three-component version.
type Version struct {
	Major int
	Minor int
	Micro int
}

// ParseVersion parses "x.y.z" with numeric components.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.HasPrefix(part, "+") {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Micro: nums[2]}, nil
}

// String returns the canonical "x.y.z" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// Compare returns -1, 0 or +1 comparing v to o numerically.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return sign(v.Major - o.Major)
	case v.Minor != o.Minor:
		return sign(v.Minor - o.Minor)
	default:
		return sign(v.Micro - o.Micro)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// ReleaseTag is a validated release identifier.
type ReleaseTag struct {
	raw     string
	version Version
}

// ParseReleaseTag validates a user supplied release tag.
// Returns ErrInvalidReleaseTag for anything but digits.digits.digits.
func ParseReleaseTag(s string) (ReleaseTag, error) {
	if !releaseTagPattern.MatchString(s) {
		return ReleaseTag{}, fmt.Errorf("%w: %q", ErrInvalidReleaseTag, s)
	}
	v, err := ParseVersion(s)
	if err != nil {
		return ReleaseTag{}, fmt.Errorf("%w: %q", ErrInvalidReleaseTag, s)
	}
	return ReleaseTag{raw: s, version: v}, nil
}

// MustParseReleaseTag is like ParseReleaseTag but panics on error.
// Intended for tests and constants.
func MustParseReleaseTag(s string) ReleaseTag {
	tag, err := ParseReleaseTag(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// String returns the tag exactly as supplied.
func (t ReleaseTag) String() string {
	return t.raw
}

// Version returns the numeric form of the tag.
func (t ReleaseTag) Version() Version {
	return t.version
}

// IsZero reports whether the tag was never parsed.
func (t ReleaseTag) IsZero() bool {
	return t.raw == ""
}
