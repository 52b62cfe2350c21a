package deps

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Index is the catalog of versions available per package. Resolution
// only ever picks versions listed here, which keeps runs reproducible
// against a checked-in catalog.
type Index struct {
	Packages map[string][]string `yaml:"packages"`
}

// LoadIndex reads a version index from a YAML file.
func LoadIndex(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	var idx Index
	if err := yaml.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("parse index %s: %w", path, err)
	}
	if len(idx.Packages) == 0 {
		return nil, fmt.Errorf("index %s lists no packages", path)
	}

	for name, versions := range idx.Packages {
		for _, v := range versions {
			if !ValidVersion(v) {
				return nil, fmt.Errorf("index %s: package %s has invalid version %q", path, name, v)
			}
		}
	}
	return &idx, nil
}

// Versions returns the known versions of a package sorted ascending,
// each with the canonical "v" prefix. The second result is false for
// unknown packages.
func (idx *Index) Versions(name string) ([]string, bool) {
	raw, ok := idx.Packages[name]
	if !ok {
		return nil, false
	}
	versions := make([]string, len(raw))
	for i, v := range raw {
		versions[i] = withV(v)
	}
	semver.Sort(versions)
	return versions, true
}
