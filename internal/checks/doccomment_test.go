package checks

import (
	"testing"

	"github.com/matrun/matrun/internal/config"
)

func docCheck(ignore ...string) *DocComment {
	return NewDocComment(config.DocComment{Ignore: ignore})
}

func codesOf(diags []Diagnostic) []string {
	codes := make([]string, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}
	return codes
}

func hasCode(diags []Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

const documentedFile = `// Package good is fully documented.
package good

// Widget is a documented type.
type Widget struct{}

// MakeWidget is a documented function.
func MakeWidget() Widget { return Widget{} }

// Size is a documented method.
func (w Widget) Size() int { return 0 }

// MaxWidgets is a documented value.
const MaxWidgets = 10
`

func TestDocComment_CleanFilePasses(t *testing.T) {
	root := writeTree(t, map[string]string{"good/good.go": documentedFile})

	diags, err := docCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none", diags)
	}
}

func TestDocComment_MissingDocs(t *testing.T) {
	root := writeTree(t, map[string]string{"bad/bad.go": `package bad

type Exported struct{}

func DoThing() {}

func (e Exported) Method() {}

const Limit = 3

type unexported struct{}

func internal() {}
`})

	diags, err := docCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{CodePackageDoc, CodeTypeDoc, CodeFuncDoc, CodeMethodDoc, CodeValueDoc} {
		if !hasCode(diags, want) {
			t.Errorf("missing %s in %v", want, codesOf(diags))
		}
	}
	if len(diags) != 5 {
		t.Errorf("got %d diagnostics, want 5: %v", len(diags), diags)
	}
}

func TestDocComment_IgnoredCodesAreSuppressed(t *testing.T) {
	root := writeTree(t, map[string]string{"bad/bad.go": `package bad

func (x Thing) Method() {}

const Limit = 3

// Thing is documented without a period
type Thing struct{}
`})

	// The default ignore set suppresses package, method, value and
	// trailing-period findings; this tree then has nothing left.
	diags, err := docCheck(config.DefaultDocIgnore...).Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none with default ignores", diags)
	}

	// Without the ignore list all four fire.
	diags, err = docCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 4 {
		t.Errorf("got %d diagnostics, want 4: %v", len(diags), diags)
	}
}

func TestDocComment_TextRules(t *testing.T) {
	root := writeTree(t, map[string]string{"p/p.go": `// Package p exists.
package p

// Wrong words open this comment.
type Thing struct{}

// Other does other things
func Other() {}
`})

	diags, err := docCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !hasCode(diags, CodeDocName) {
		t.Errorf("missing %s in %v", CodeDocName, diags)
	}
	if !hasCode(diags, CodeDocPeriod) {
		t.Errorf("missing %s in %v", CodeDocPeriod, diags)
	}
	if len(diags) != 2 {
		t.Errorf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
}

func TestDocComment_PackageDocCountsAcrossFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"p/doc.go":   "// Package p is documented in doc.go.\npackage p\n",
		"p/other.go": "package p\n\n// Thing is a type.\ntype Thing struct{}\n",
	})

	diags, err := docCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if hasCode(diags, CodePackageDoc) {
		t.Errorf("package doc in a sibling file should satisfy DC001: %v", diags)
	}
}

func TestDocComment_SkipsTestAndGeneratedFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"p/p.go": "// Package p exists.\npackage p\n",
		"p/p_test.go": `package p

func TestExportedHelper(t *testing.T) {}

type ExportedFixture struct{}
`,
		"p/zz_generated.go": `// Code generated by tool. DO NOT EDIT.

package p

type GeneratedThing struct{}
`,
	})

	diags, err := docCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none", diags)
	}
}

func TestDocComment_BracketedNameAccepted(t *testing.T) {
	root := writeTree(t, map[string]string{"p/p.go": `// Package p exists.
package p

// [Thing] wears brackets.
type Thing struct{}
`})

	diags, err := docCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if hasCode(diags, CodeDocName) {
		t.Errorf("bracketed name should pass DC101: %v", diags)
	}
}
