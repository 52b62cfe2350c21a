package deps

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Op is a version comparison operator in a requirement constraint.
type Op string

const (
	OpEq Op = "=="
	OpNe Op = "!="
	OpGe Op = ">="
	OpLe Op = "<="
	OpGt Op = ">"
	OpLt Op = "<"
)

// Constraint restricts the versions a requirement accepts.
// Versions follow semver and may be shortened ("v2", "v2.1"); the
// leading "v" is optional in manifests and is added on parse.
type Constraint struct {
	Op      Op
	Version string
}

// Requirement names a package and the constraints its version must
// satisfy. An empty constraint list accepts any version.
type Requirement struct {
	Name        string
	Constraints []Constraint
}

// ParseRequirement parses a single requirement line such as
// "github.com/go-chi/chi/v5>=v5.1,<v6". Constraints are comma-separated
// and all must hold.
func ParseRequirement(line string) (Requirement, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Requirement{}, fmt.Errorf("empty requirement")
	}
	// Tilde and caret ranges from other ecosystems are mistyped
	// operators here, not name characters.
	if strings.ContainsAny(line, "~^") {
		return Requirement{}, fmt.Errorf("requirement %q: unsupported operator", line)
	}

	i := strings.IndexAny(line, "=!<>")
	if i == 0 {
		return Requirement{}, fmt.Errorf("requirement %q has no package name", line)
	}
	if i < 0 {
		if strings.ContainsAny(line, " \t,") {
			return Requirement{}, fmt.Errorf("invalid package name %q", line)
		}
		return Requirement{Name: line}, nil
	}

	req := Requirement{Name: strings.TrimSpace(line[:i])}
	if strings.ContainsAny(req.Name, " \t,") {
		return Requirement{}, fmt.Errorf("invalid package name %q", req.Name)
	}

	for _, part := range strings.Split(line[i:], ",") {
		c, err := parseConstraint(strings.TrimSpace(part))
		if err != nil {
			return Requirement{}, fmt.Errorf("requirement %q: %w", line, err)
		}
		req.Constraints = append(req.Constraints, c)
	}
	return req, nil
}

func parseConstraint(s string) (Constraint, error) {
	if s == "" {
		return Constraint{}, fmt.Errorf("empty constraint")
	}

	var op Op
	switch {
	case strings.HasPrefix(s, "=="):
		op = OpEq
	case strings.HasPrefix(s, "!="):
		op = OpNe
	case strings.HasPrefix(s, ">="):
		op = OpGe
	case strings.HasPrefix(s, "<="):
		op = OpLe
	case strings.HasPrefix(s, ">"):
		op = OpGt
	case strings.HasPrefix(s, "<"):
		op = OpLt
	default:
		return Constraint{}, fmt.Errorf("constraint %q has no operator", s)
	}

	v := strings.TrimSpace(strings.TrimPrefix(s, string(op)))
	if !ValidVersion(v) {
		return Constraint{}, fmt.Errorf("invalid version %q", v)
	}
	return Constraint{Op: op, Version: withV(v)}, nil
}

// Satisfies reports whether version meets every constraint of the
// requirement. Shortened versions compare with missing parts as zero,
// so "v5.1" equals "v5.1.0".
func (r Requirement) Satisfies(version string) bool {
	v := withV(version)
	for _, c := range r.Constraints {
		cmp := semver.Compare(v, c.Version)
		ok := false
		switch c.Op {
		case OpEq:
			ok = cmp == 0
		case OpNe:
			ok = cmp != 0
		case OpGe:
			ok = cmp >= 0
		case OpLe:
			ok = cmp <= 0
		case OpGt:
			ok = cmp > 0
		case OpLt:
			ok = cmp < 0
		}
		if !ok {
			return false
		}
	}
	return true
}

// String renders the requirement in manifest form.
func (r Requirement) String() string {
	if len(r.Constraints) == 0 {
		return r.Name
	}
	parts := make([]string, len(r.Constraints))
	for i, c := range r.Constraints {
		parts[i] = string(c.Op) + c.Version
	}
	return r.Name + strings.Join(parts, ",")
}

// RangeRequirement builds the requirement for a compatible-release
// range on pkg. A minor range such as "v5.1" expands to
// ">=v5.1,<v5.2"; a bare major such as "v2" expands to ">=v2,<v3".
func RangeRequirement(pkg, rng string) (Requirement, error) {
	v := withV(rng)
	if !semver.IsValid(v) {
		return Requirement{}, fmt.Errorf("invalid range %q for %s", rng, pkg)
	}

	upper, err := nextVersion(v)
	if err != nil {
		return Requirement{}, fmt.Errorf("range %q for %s: %w", rng, pkg, err)
	}
	return Requirement{
		Name: pkg,
		Constraints: []Constraint{
			{Op: OpGe, Version: v},
			{Op: OpLt, Version: upper},
		},
	}, nil
}

// nextVersion returns the exclusive upper bound for a range: the next
// minor for "vX.Y" (and anything more precise), the next major for a
// bare "vX".
func nextVersion(v string) (string, error) {
	if semver.Major(v) == v {
		n, err := strconv.Atoi(strings.TrimPrefix(v, "v"))
		if err != nil {
			return "", fmt.Errorf("parse major of %q: %w", v, err)
		}
		return fmt.Sprintf("v%d", n+1), nil
	}

	mm := semver.MajorMinor(v)
	dot := strings.LastIndex(mm, ".")
	minor, err := strconv.Atoi(mm[dot+1:])
	if err != nil {
		return "", fmt.Errorf("parse minor of %q: %w", v, err)
	}
	return fmt.Sprintf("%s.%d", mm[:dot], minor+1), nil
}

// ValidVersion reports whether s is a valid, possibly shortened,
// semantic version with or without the leading "v".
func ValidVersion(s string) bool {
	return semver.IsValid(withV(s))
}

func withV(s string) string {
	if strings.HasPrefix(s, "v") {
		return s
	}
	return "v" + s
}
