package checks

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/matrun/matrun/internal/config"
)

// Import order rule codes.
const (
	CodeImportGroup = "IM001" // group out of order
	CodeImportSort  = "IM002" // import unsorted within its group
)

type importClass int

const (
	classStdlib importClass = iota
	classThirdParty
	classLocal
)

func (c importClass) String() string {
	switch c {
	case classStdlib:
		return "standard library"
	case classThirdParty:
		return "third-party"
	default:
		return "local"
	}
}

// ImportOrder checks that imports group as standard library, then
// third-party, then local, and that each contiguous group is sorted.
// Scopes limit the scan to the directories a project actually owns.
type ImportOrder struct {
	Local  string
	Scopes []string
}

// NewImportOrder builds the check from config.
func NewImportOrder(cfg config.Imports) *ImportOrder {
	return &ImportOrder{Local: cfg.Local, Scopes: cfg.Scopes}
}

// Name is the gate step name.
func (c *ImportOrder) Name() string { return "imports" }

// Run scans every scope under root, test files included.
func (c *ImportOrder) Run(root string) ([]Diagnostic, error) {
	var diags []Diagnostic
	seen := map[string]bool{}

	for _, scope := range c.Scopes {
		dir := filepath.Join(root, scope)
		err := walkGoFiles(dir, nil, true, func(fullPath, rel string) error {
			if seen[fullPath] {
				return nil
			}
			seen[fullPath] = true

			display := rel
			if scope != "." && scope != "" {
				display = filepath.ToSlash(filepath.Join(scope, rel))
			}
			fileDiags, err := c.checkFile(fullPath, display)
			if err != nil {
				return err
			}
			diags = append(diags, fileDiags...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sortDiagnostics(diags)
	return diags, nil
}

func (c *ImportOrder) checkFile(fullPath, rel string) ([]Diagnostic, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, fullPath, nil, parser.ImportsOnly)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rel, err)
	}

	var diags []Diagnostic
	prevClass := classStdlib
	prevLine := -2
	prevPath := ""

	for _, imp := range file.Imports {
		p := strings.Trim(imp.Path.Value, `"`)
		if p == "C" {
			continue
		}
		line := fset.Position(imp.Pos()).Line
		class := c.classify(p)

		if class < prevClass {
			diags = append(diags, Diagnostic{
				File:    rel,
				Line:    line,
				Code:    CodeImportGroup,
				Message: fmt.Sprintf("%s import %q after %s imports", class, p, prevClass),
			})
		}

		// Same contiguous group: no blank line since the previous
		// import.
		if line == prevLine+1 && prevPath > p {
			diags = append(diags, Diagnostic{
				File:    rel,
				Line:    line,
				Code:    CodeImportSort,
				Message: fmt.Sprintf("import %q should sort before %q", p, prevPath),
			})
		}

		if class > prevClass {
			prevClass = class
		}
		prevLine = line
		prevPath = p
	}
	return diags, nil
}

// classify buckets an import path. Paths whose first segment has no
// dot are standard library; paths under Local are local; the rest are
// third-party.
func (c *ImportOrder) classify(path string) importClass {
	if c.Local != "" && (path == c.Local || strings.HasPrefix(path, c.Local+"/")) {
		return classLocal
	}
	first := path
	if i := strings.Index(first, "/"); i >= 0 {
		first = first[:i]
	}
	if !strings.Contains(first, ".") {
		return classStdlib
	}
	return classThirdParty
}
