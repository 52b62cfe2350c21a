package docsgate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matrun/matrun/internal/checks"
	"github.com/matrun/matrun/internal/config"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func docLint(t *testing.T, files map[string]string) []checks.Diagnostic {
	t.Helper()
	root := writeTree(t, files)
	lint := NewDocLint(config.Docs{Source: "docs", BuildDir: "docs/_build", MaxLineLength: 120})
	diags, err := lint.Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return diags
}

func codesOf(diags []checks.Diagnostic) []string {
	var codes []string
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestDocLint_CleanProsePasses(t *testing.T) {
	diags := docLint(t, map[string]string{
		"README.md":     "# demo\n\nA fine project.\n",
		"docs/index.md": "# Guide\n\nShort lines only.\n",
	})
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
}

func TestDocLint_LineLength(t *testing.T) {
	atLimit := strings.Repeat("x", 120)
	over := strings.Repeat("x", 121)
	diags := docLint(t, map[string]string{
		"README.md": "# demo\n\n" + atLimit + "\n" + over + "\n",
	})
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly one", diags)
	}
	d := diags[0]
	if d.Code != CodeProseLineLength || d.Line != 4 {
		t.Errorf("got %s at line %d, want %s at line 4", d.Code, d.Line, CodeProseLineLength)
	}
}

func TestDocLint_TrailingWhitespace(t *testing.T) {
	diags := docLint(t, map[string]string{
		"README.md": "# demo\n\ntrailing here \n",
	})
	if codes := codesOf(diags); len(codes) != 1 || codes[0] != CodeTrailingWhitespace {
		t.Errorf("codes = %v, want [%s]", codes, CodeTrailingWhitespace)
	}
}

func TestDocLint_SetextUnderline(t *testing.T) {
	diags := docLint(t, map[string]string{
		"docs/a.md": "Long heading title\n---\n",
		"docs/b.md": "Title\n=====\n",
	})
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly one", diags)
	}
	if diags[0].Code != CodeUnderlineLength || diags[0].File != "docs/a.md" {
		t.Errorf("got %s in %s, want %s in docs/a.md", diags[0].Code, diags[0].File, CodeUnderlineLength)
	}
}

func TestDocLint_FencesExemptAndBalanced(t *testing.T) {
	longCode := strings.Repeat("y", 200)
	diags := docLint(t, map[string]string{
		"docs/ok.md":  "# ok\n\n```go\n" + longCode + "\n```\n",
		"docs/bad.md": "# bad\n\n```go\ncode\n",
	})
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want only the unclosed fence", diags)
	}
	d := diags[0]
	if d.Code != CodeUnclosedFence || d.File != "docs/bad.md" || d.Line != 3 {
		t.Errorf("got %s in %s at line %d, want %s at the fence opening", d.Code, d.File, d.Line, CodeUnclosedFence)
	}
}

func TestDocLint_BuildDirIgnored(t *testing.T) {
	diags := docLint(t, map[string]string{
		"docs/index.md":           "# Guide\n",
		"docs/_build/leftover.md": strings.Repeat("z", 500) + "  \n```\n",
	})
	if len(diags) != 0 {
		t.Errorf("diagnostics from the build dir = %v, want none", diags)
	}
}

func TestDocLint_FrontmatterSkipped(t *testing.T) {
	diags := docLint(t, map[string]string{
		"docs/page.md": "---\ntitle: A page with a very long frontmatter value " + strings.Repeat("x", 120) + "\n---\n\n# Page\n",
	})
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want frontmatter ignored", diags)
	}
}

func TestDocLint_MissingDocsDirIsFine(t *testing.T) {
	diags := docLint(t, map[string]string{
		"README.md": "# demo\n",
	})
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
}

func TestValidateMetadata(t *testing.T) {
	good := "# demo\n\nSee the [guide][docs] and [site](https://example.com).\n\n```go\ncode\n```\n\n[docs]: https://example.com/docs\n"
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"clean document", good, ""},
		{"empty document", "\n\n", CodeMetaEmpty},
		{"no title", "Just prose without a heading.\n", CodeMetaNoTitle},
		{"unclosed fence", "# demo\n\n```\ncode\n", CodeMetaUnclosedFence},
		{"dangling reference", "# demo\n\nSee [there][nowhere].\n", CodeMetaDanglingRef},
		{"empty link target", "# demo\n\nSee [here]().\n", CodeMetaEmptyTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, map[string]string{"README.md": tt.content})
			diags, err := ValidateMetadata(root, "README.md")
			if err != nil {
				t.Fatalf("ValidateMetadata: %v", err)
			}
			if tt.wantCode == "" {
				if len(diags) != 0 {
					t.Errorf("diagnostics = %v, want none", diags)
				}
				return
			}
			if len(diags) != 1 || diags[0].Code != tt.wantCode {
				t.Errorf("diagnostics = %v, want one %s", diags, tt.wantCode)
			}
		})
	}
}

func TestValidateMetadata_RefsAreCaseInsensitive(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md": "# demo\n\nSee [the docs][Docs].\n\n[docs]: https://example.com\n",
	})
	diags, err := ValidateMetadata(root, "README.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want case-insensitive reference match", diags)
	}
}

func TestValidateMetadata_ShortcutReference(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md": "# demo\n\nSee [guide][].\n",
	})
	diags, err := ValidateMetadata(root, "README.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 || diags[0].Code != CodeMetaDanglingRef {
		t.Errorf("diagnostics = %v, want one %s for the shortcut reference", diags, CodeMetaDanglingRef)
	}
}
