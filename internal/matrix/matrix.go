package matrix

import (
	"fmt"
	"strings"

	"github.com/matrun/matrun/internal/config"
)

// Environment is one cell of the matrix: a runtime paired with a
// framework range. A matrix with no framework axis yields one
// environment per runtime.
type Environment struct {
	// Name identifies the environment, e.g. "go1.24-chi-v5.1".
	Name string

	Runtime config.Runtime

	// Framework and Range are empty when the matrix has no
	// framework axis. Package is the import path pinned to Range
	// during dependency resolution.
	Framework string
	Package   string
	Range     string
}

// HasFramework reports whether the environment carries a framework
// pin.
func (e Environment) HasFramework() bool {
	return e.Framework != ""
}

// Label renders the axes for human output, e.g.
// "go1.24 / chi v5.1".
func (e Environment) Label() string {
	if !e.HasFramework() {
		return e.Runtime.Name
	}
	return fmt.Sprintf("%s / %s %s", e.Runtime.Name, e.Framework, e.Range)
}

// Expand produces every environment of the matrix in declaration
// order: runtimes outermost, then frameworks, then ranges. Excluded
// combinations are dropped.
func Expand(m config.Matrix) []Environment {
	var envs []Environment
	for _, rt := range m.Runtimes {
		if len(m.Frameworks) == 0 {
			if !excluded(m.Exclude, rt.Name, "", "") {
				envs = append(envs, Environment{Name: rt.Name, Runtime: rt})
			}
			continue
		}
		for _, fw := range m.Frameworks {
			for _, rng := range fw.Ranges {
				if excluded(m.Exclude, rt.Name, fw.Name, rng) {
					continue
				}
				envs = append(envs, Environment{
					Name:      envName(rt.Name, fw.Name, rng),
					Runtime:   rt,
					Framework: fw.Name,
					Package:   fw.Package,
					Range:     rng,
				})
			}
		}
	}
	return envs
}

// Select returns the named environments in request order. Unknown
// names fail with the full list of known names, which is the mistake
// this surfaces most.
func Select(envs []Environment, names []string) ([]Environment, error) {
	if len(names) == 0 {
		return envs, nil
	}

	byName := make(map[string]Environment, len(envs))
	known := make([]string, len(envs))
	for i, e := range envs {
		byName[e.Name] = e
		known[i] = e.Name
	}

	selected := make([]Environment, 0, len(names))
	for _, name := range names {
		e, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown environment %q (known: %s)", name, strings.Join(known, ", "))
		}
		selected = append(selected, e)
	}
	return selected, nil
}

func envName(runtime, framework, rng string) string {
	return fmt.Sprintf("%s-%s-%s", runtime, framework, rng)
}

func excluded(excludes []config.MatrixExclude, runtime, framework, rng string) bool {
	for _, ex := range excludes {
		if ex.Runtime != "" && ex.Runtime != runtime {
			continue
		}
		if ex.Framework != "" && ex.Framework != framework {
			continue
		}
		if ex.Range != "" && ex.Range != rng {
			continue
		}
		return true
	}
	return false
}
