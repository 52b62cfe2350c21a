// Package selfcheck verifies that a config's references hold up
// against the filesystem and the version index: manifests parse,
// scopes exist, runtimes are runnable, every matrix cell can resolve.
// It runs standalone and as the final quality gate step, so a green
// gate also vouches for the config it ran under.
package selfcheck

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/deps"
)

// Problem is one finding. Area groups problems by config section.
type Problem struct {
	Area    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Area, p.Message)
}

// Strings renders problems for reports.
func Strings(problems []Problem) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = p.String()
	}
	return out
}

// Run checks cfg against the project at root and returns every
// problem found. An empty result means the config is sound.
func Run(cfg *config.Config, root string) []Problem {
	var problems []Problem
	add := func(area, format string, args ...any) {
		problems = append(problems, Problem{Area: area, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.Test.Backend == "local" {
		for _, rt := range cfg.Matrix.Runtimes {
			if _, err := exec.LookPath(rt.Command); err != nil {
				add("matrix", "runtime %s: command %q not found in PATH", rt.Name, rt.Command)
			}
		}
	}

	var reqs []deps.Requirement
	for _, m := range cfg.Deps.Manifests {
		parsed, err := deps.ParseManifest(filepath.Join(root, m))
		if err != nil {
			add("deps", "manifest %s: %v", m, err)
			continue
		}
		reqs = append(reqs, parsed...)
	}

	var idx *deps.Index
	if cfg.Deps.Index != "" {
		var err error
		idx, err = deps.LoadIndex(filepath.Join(root, cfg.Deps.Index))
		if err != nil {
			add("deps", "index %s: %v", cfg.Deps.Index, err)
		}
	}

	if idx != nil {
		for _, req := range deps.Merge(reqs) {
			if _, ok := idx.Versions(req.Name); !ok {
				add("deps", "package %s is not in the version index", req.Name)
			}
		}
		for _, fw := range cfg.Matrix.Frameworks {
			available, ok := idx.Versions(fw.Package)
			if !ok {
				add("matrix", "framework %s: package %s is not in the version index", fw.Name, fw.Package)
				continue
			}
			for _, rng := range fw.Ranges {
				req, err := deps.RangeRequirement(fw.Package, rng)
				if err != nil {
					add("matrix", "framework %s: %v", fw.Name, err)
					continue
				}
				satisfied := false
				for _, v := range available {
					if req.Satisfies(v) {
						satisfied = true
						break
					}
				}
				if !satisfied {
					add("matrix", "framework %s: no indexed version of %s satisfies range %s",
						fw.Name, fw.Package, rng)
				}
			}
		}
	}

	for _, scope := range cfg.Quality.Imports.Scopes {
		full := filepath.Join(root, scope)
		if info, err := os.Stat(full); err != nil || !info.IsDir() {
			add("quality", "imports scope %s is not a directory", scope)
		}
	}

	docsConfigured := len(cfg.Docs.Build) > 0 || len(cfg.Docs.Metadata) > 0 || len(cfg.Docs.Stubs) > 0
	if docsConfigured {
		if info, err := os.Stat(filepath.Join(root, cfg.Docs.Source)); err != nil || !info.IsDir() {
			add("docs", "source %s is not a directory", cfg.Docs.Source)
		}
		for _, m := range cfg.Docs.Metadata {
			if _, err := os.Stat(filepath.Join(root, m)); err != nil {
				add("docs", "metadata file %s does not exist", m)
			}
		}
	}

	return problems
}
