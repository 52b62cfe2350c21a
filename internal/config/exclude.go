package config

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
)

// Matcher decides whether a project-relative path falls under a set
// of exclude patterns. Three pattern forms are supported:
//
//   - a bare name ("vendor") matches that name as any path segment
//   - a path ("docs/_build") matches the path and everything under it
//   - a glob ("**/*.gen.go") matches with doublestar semantics
//
// Paths are normalized to slash form before matching.
type Matcher struct {
	patterns []string
}

// NewMatcher builds a Matcher. Patterns are cleaned; empty patterns
// are dropped.
func NewMatcher(patterns []string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		p = strings.Trim(filepath.ToSlash(p), "/")
		if p == "" || p == "." {
			continue
		}
		m.patterns = append(m.patterns, p)
	}
	return m
}

// Match reports whether path is excluded.
func (m *Matcher) Match(path string) bool {
	path = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "./")
	if path == "." {
		path = ""
	}

	for _, p := range m.patterns {
		if isGlob(p) {
			if ok, err := doublestar.Match(p, path); err == nil && ok {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
		if !strings.Contains(p, "/") && hasSegment(path, p) {
			return true
		}
	}
	return false
}

// Patterns returns the normalized pattern list, mainly for reports.
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

func hasSegment(path, name string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == name {
			return true
		}
	}
	return false
}
