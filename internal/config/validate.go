package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/matrun/matrun/internal/deps"
)

// Validate checks cross-field rules the schema cannot express.
// Defaults must already be applied.
func (c *Config) Validate() error {
	runtimes := map[string]bool{}
	for i, r := range c.Matrix.Runtimes {
		if runtimes[r.Name] {
			return fmt.Errorf("matrix.runtimes[%d]: duplicate runtime %q", i, r.Name)
		}
		runtimes[r.Name] = true

		if c.Test.Backend == "container" && r.Image == "" {
			return fmt.Errorf("matrix.runtimes[%d]: runtime %q needs an image for the container backend", i, r.Name)
		}
	}

	frameworks := map[string]map[string]bool{}
	for i, f := range c.Matrix.Frameworks {
		if _, ok := frameworks[f.Name]; ok {
			return fmt.Errorf("matrix.frameworks[%d]: duplicate framework %q", i, f.Name)
		}
		ranges := map[string]bool{}
		for j, rng := range f.Ranges {
			if !deps.ValidVersion(rng) {
				return fmt.Errorf("matrix.frameworks[%d].ranges[%d]: invalid range %q", i, j, rng)
			}
			if ranges[rng] {
				return fmt.Errorf("matrix.frameworks[%d].ranges[%d]: duplicate range %q", i, j, rng)
			}
			ranges[rng] = true
		}
		frameworks[f.Name] = ranges
	}

	for i, ex := range c.Matrix.Exclude {
		if ex.Runtime == "" && ex.Framework == "" {
			return fmt.Errorf("matrix.exclude[%d]: needs a runtime or a framework", i)
		}
		if ex.Runtime != "" && !runtimes[ex.Runtime] {
			return fmt.Errorf("matrix.exclude[%d]: unknown runtime %q", i, ex.Runtime)
		}
		if ex.Framework != "" {
			ranges, ok := frameworks[ex.Framework]
			if !ok {
				return fmt.Errorf("matrix.exclude[%d]: unknown framework %q", i, ex.Framework)
			}
			if ex.Range != "" && !ranges[ex.Range] {
				return fmt.Errorf("matrix.exclude[%d]: framework %q has no range %q", i, ex.Framework, ex.Range)
			}
		} else if ex.Range != "" {
			return fmt.Errorf("matrix.exclude[%d]: range without a framework", i)
		}
	}

	needsIndex := len(c.Deps.Manifests) > 0 || len(c.Matrix.Frameworks) > 0
	if needsIndex && c.Deps.Index == "" {
		return fmt.Errorf("deps.index is required when manifests or frameworks are declared")
	}

	if c.Test.Timeout != "" {
		if _, err := time.ParseDuration(c.Test.Timeout); err != nil {
			return fmt.Errorf("test.timeout: invalid duration %q", c.Test.Timeout)
		}
	}

	for i, p := range c.Quality.Fixtures {
		if err := checkRelative(p); err != nil {
			return fmt.Errorf("quality.fixtures[%d]: %w", i, err)
		}
	}
	for i, p := range c.Docs.Stubs {
		if err := checkRelative(p); err != nil {
			return fmt.Errorf("docs.stubs[%d]: %w", i, err)
		}
	}
	if err := checkRelative(c.Docs.BuildDir); err != nil {
		return fmt.Errorf("docs.build_dir: %w", err)
	}

	return nil
}

// checkRelative rejects paths that escape the project root. Fixture
// and stub paths are created and deleted by the tool, so they must
// stay inside the tree.
func checkRelative(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("path %q must be relative", p)
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes the project root", p)
	}
	return nil
}
