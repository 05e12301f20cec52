package bump

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrVersionNotFound indicates no version assignment was found in the
	// searched content.
	ErrVersionNotFound = errors.New("no version assignment found")

	// ErrUnknownLevel indicates an unrecognized bump level.
	ErrUnknownLevel = errors.New("unknown bump level")
)

var (
	// assignmentRe matches a TOML-style version assignment. The groups
	// capture major, minor, and patch.
	assignmentRe = regexp.MustCompile(`version\s*=\s*"(\d+)\.(\d+)\.(\d+)"`)

	// tripleRe matches the dotted triple inside a matched assignment.
	tripleRe = regexp.MustCompile(`\d+\.\d+\.\d+`)
)

// Level selects which semver component a bump increments.
type Level string

const (
	Patch Level = "patch"
	Minor Level = "minor"
	Major Level = "major"
)

// Levels lists all valid bump levels.
var Levels = []Level{Patch, Minor, Major}

// ParseLevel converts a string into a [Level].
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case Patch, Minor, Major:
		return Level(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Result reports a completed (or simulated) bump.
type Result struct {
	Old   string
	New   string
	Level Level
}

// Apply finds the first version assignment in content, increments it
// according to level, and returns content with the new version substituted
// into every version assignment.
//
// Substitution is intentionally global even though extraction uses only the
// first match: any later `version = "..."` assignments are overwritten with
// the value derived from the first one. Files with a single assignment (the
// normal case) are unaffected by this; files with several will have them
// collapsed to one value.
func Apply(content []byte, level Level) ([]byte, Result, error) {
	m := assignmentRe.FindSubmatch(content)
	if m == nil {
		return nil, Result{}, ErrVersionNotFound
	}

	major, minor, patch, err := parseTriple(m)
	if err != nil {
		return nil, Result{}, err
	}

	old := semver.New(major, minor, patch, "", "")

	var next semver.Version

	switch level {
	case Patch:
		next = old.IncPatch()
	case Minor:
		next = old.IncMinor()
	case Major:
		next = old.IncMajor()
	default:
		return nil, Result{}, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	// Rewrite only the dotted triple within each matched assignment, so the
	// surrounding spacing and quoting are preserved byte for byte.
	out := assignmentRe.ReplaceAllFunc(content, func(assignment []byte) []byte {
		return tripleRe.ReplaceAll(assignment, []byte(next.String()))
	})

	res := Result{
		Old:   old.String(),
		New:   next.String(),
		Level: level,
	}

	return out, res, nil
}

func parseTriple(m [][]byte) (major, minor, patch uint64, err error) {
	major, err = strconv.ParseUint(string(m[1]), 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse major version: %w", err)
	}

	minor, err = strconv.ParseUint(string(m[2]), 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse minor version: %w", err)
	}

	patch, err = strconv.ParseUint(string(m[3]), 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse patch version: %w", err)
	}

	return major, minor, patch, nil
}
