package checks

import (
	"testing"

	"github.com/matrun/matrun/internal/config"
)

func importCheck(scopes ...string) *ImportOrder {
	if len(scopes) == 0 {
		scopes = []string{"."}
	}
	return NewImportOrder(config.Imports{Local: "example.com/demo", Scopes: scopes})
}

func TestImportOrder_WellGroupedPasses(t *testing.T) {
	root := writeTree(t, map[string]string{"p/p.go": `package p

import (
	"fmt"
	"os"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"example.com/demo/internal/config"
)

var _ = fmt.Sprint
var _ = os.Args
var _ = assert.Equal
var _ = yaml.Marshal
var _ = config.Config{}
`})

	diags, err := importCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none", diags)
	}
}

func TestImportOrder_GroupOutOfOrder(t *testing.T) {
	root := writeTree(t, map[string]string{"p/p.go": `package p

import (
	"example.com/demo/internal/config"

	"fmt"
)

var _ = fmt.Sprint
var _ = config.Config{}
`})

	diags, err := importCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != CodeImportGroup {
		t.Fatalf("diags = %v, want one IM001", diags)
	}
	if diags[0].File != "p/p.go" {
		t.Errorf("File = %q", diags[0].File)
	}
}

func TestImportOrder_UnsortedWithinGroup(t *testing.T) {
	root := writeTree(t, map[string]string{"p/p.go": `package p

import (
	"os"
	"fmt"
)

var _ = fmt.Sprint
var _ = os.Args
`})

	diags, err := importCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != CodeImportSort {
		t.Errorf("diags = %v, want one IM002", diags)
	}
}

func TestImportOrder_BlankLineStartsNewGroup(t *testing.T) {
	// "archive/zip" after a blank line is a new group, so it is not
	// compared against "os" for sorting; but a stdlib import after a
	// third-party group is still a grouping violation.
	root := writeTree(t, map[string]string{"p/p.go": `package p

import (
	"os"

	"github.com/stretchr/testify/assert"

	"archive/zip"
)

var _ = os.Args
var _ = assert.Equal
var _ = zip.ErrFormat
`})

	diags, err := importCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 1 || diags[0].Code != CodeImportGroup {
		t.Errorf("diags = %v, want one IM001 for the trailing stdlib group", diags)
	}
}

func TestImportOrder_ScopesLimitTheScan(t *testing.T) {
	bad := `package p

import (
	"os"
	"fmt"
)

var _ = fmt.Sprint
var _ = os.Args
`
	root := writeTree(t, map[string]string{
		"cmd/p.go":    bad,
		"vendor/v.go": bad,
	})

	diags, err := importCheck("./cmd").Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("diags = %v, want one finding from cmd only", diags)
	}
	if diags[0].File != "cmd/p.go" {
		t.Errorf("File = %q, want cmd/p.go", diags[0].File)
	}
}

func TestImportOrder_TestFilesAreChecked(t *testing.T) {
	root := writeTree(t, map[string]string{"p/p_test.go": `package p

import (
	"os"
	"fmt"
)

var _ = fmt.Sprint
var _ = os.Args
`})

	diags, err := importCheck().Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 1 {
		t.Errorf("diags = %v, want the test file flagged", diags)
	}
}

func TestClassify(t *testing.T) {
	c := importCheck()
	tests := []struct {
		path string
		want importClass
	}{
		{path: "fmt", want: classStdlib},
		{path: "net/http", want: classStdlib},
		{path: "github.com/spf13/cobra", want: classThirdParty},
		{path: "example.com/demo", want: classLocal},
		{path: "example.com/demo/internal/deps", want: classLocal},
		{path: "example.com/demolition", want: classThirdParty},
	}
	for _, tt := range tests {
		if got := c.classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
