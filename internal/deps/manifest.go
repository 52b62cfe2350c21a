package deps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseManifest reads a requirement manifest. Each non-blank line is a
// requirement; "#" starts a comment when it opens the line or follows
// whitespace; "-r <path>" includes another manifest relative to the
// current file. Include cycles are an error.
func ParseManifest(path string) ([]Requirement, error) {
	return parseManifest(path, map[string]bool{})
}

func parseManifest(path string, visited map[string]bool) ([]Requirement, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path %s: %w", path, err)
	}
	if visited[abs] {
		return nil, fmt.Errorf("manifest include cycle at %s", path)
	}
	visited[abs] = true

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	var reqs []Requirement
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := stripComment(sc.Text())
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "-r"); ok {
			inc := strings.TrimSpace(rest)
			if inc == "" {
				return nil, fmt.Errorf("%s:%d: -r needs a path", path, lineNo)
			}
			if !filepath.IsAbs(inc) {
				inc = filepath.Join(filepath.Dir(path), inc)
			}
			sub, err := parseManifest(inc, visited)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			reqs = append(reqs, sub...)
			continue
		}

		req, err := ParseRequirement(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		reqs = append(reqs, req)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return reqs, nil
}

// stripComment drops a trailing comment and surrounding whitespace.
// A "#" only opens a comment at line start or after whitespace, so
// version strings containing "#" never arise but fragment-bearing
// names survive.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i == 0 {
		return ""
	}
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			line = line[:i]
			break
		}
	}
	return strings.TrimSpace(line)
}

// ParseManifests parses every manifest in order and concatenates the
// results. Later files may tighten packages named earlier; Merge
// combines duplicates.
func ParseManifests(paths []string) ([]Requirement, error) {
	var all []Requirement
	for _, p := range paths {
		reqs, err := ParseManifest(p)
		if err != nil {
			return nil, err
		}
		all = append(all, reqs...)
	}
	return all, nil
}

// Merge combines requirements by package name, concatenating the
// constraints of duplicates. First-seen order of names is preserved.
func Merge(reqs []Requirement) []Requirement {
	byName := map[string]int{}
	var merged []Requirement
	for _, r := range reqs {
		if i, ok := byName[r.Name]; ok {
			merged[i].Constraints = append(merged[i].Constraints, r.Constraints...)
			continue
		}
		byName[r.Name] = len(merged)
		merged = append(merged, Requirement{
			Name:        r.Name,
			Constraints: append([]Constraint(nil), r.Constraints...),
		})
	}
	return merged
}
