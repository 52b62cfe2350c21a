// Package checks implements the source checks behind the quality
// gate: line length, doc comments on exported declarations, and
// import grouping. Checks walk the tree themselves so they can honor
// per-check excludes, and report findings as Diagnostics rather than
// failing on the first hit.
package checks

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matrun/matrun/internal/config"
)

// Diagnostic is one finding at a source position.
type Diagnostic struct {
	File    string
	Line    int
	Code    string
	Message string
}

func (d Diagnostic) String() string {
	if d.Code == "" {
		return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
	}
	return fmt.Sprintf("%s:%d: %s %s", d.File, d.Line, d.Code, d.Message)
}

// Strings renders diagnostics for reports.
func Strings(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.String()
	}
	return out
}

func sortDiagnostics(diags []Diagnostic) {
	sort.Slice(diags, func(i, j int) bool {
		if diags[i].File != diags[j].File {
			return diags[i].File < diags[j].File
		}
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].Code < diags[j].Code
	})
}

// walkGoFiles visits every .go file under root, skipping dot
// directories and excluded paths. The callback gets the absolute path
// and the slash-form path relative to root.
func walkGoFiles(root string, exclude *config.Matcher, includeTests bool, fn func(path, rel string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if exclude != nil && exclude.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}
		if !includeTests && strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		if exclude != nil && exclude.Match(rel) {
			return nil
		}
		return fn(path, rel)
	})
}
