package vercomp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// compare result
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

var ErrUnparsable = errors.New("unparsable version")

// ReleaseLine is the native binary compatibility boundary of a version,
// the prerelease and build metadata are not part of it.
type ReleaseLine struct {
	Major uint64
	Minor uint64
	Patch uint64
}

func (l ReleaseLine) String() string {
	return fmt.Sprintf("%d.%d.%d", l.Major, l.Minor, l.Patch)
}

type Version struct {
	v *semver.Version
}

// Normalize parses a possibly shortened version such as "1.0" or "19.14"
// and pads the missing components with 0. A prerelease suffix is kept verbatim.
func Normalize(raw string) (*Version, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: empty version", ErrUnparsable)
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnparsable, raw, err)
	}
	return &Version{v: v}, nil
}

// MustNormalize is like Normalize but panics, only for static values.
func MustNormalize(raw string) *Version {
	v, err := Normalize(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Version) String() string {
	return v.v.String()
}

func (v *Version) ReleaseLine() ReleaseLine {
	return ReleaseLine{
		Major: v.v.Major(),
		Minor: v.v.Minor(),
		Patch: v.v.Patch(),
	}
}

// Compare follows semantic version precedence, build metadata is ignored.
func (v *Version) Compare(o *Version) int {
	return v.v.Compare(o.v)
}

func Compare(a, b *Version) int {
	return a.Compare(b)
}

func SameReleaseLine(a, b *Version) bool {
	return a.ReleaseLine() == b.ReleaseLine()
}
