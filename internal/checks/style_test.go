package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matrun/matrun/internal/config"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func TestStyle_LimitBoundary(t *testing.T) {
	atLimit := "// " + strings.Repeat("x", 117)   // 120 characters
	overLimit := "// " + strings.Repeat("x", 118) // 121 characters

	root := writeTree(t, map[string]string{
		"ok.go":   "package p\n\n" + atLimit + "\n",
		"long.go": "package p\n\n" + overLimit + "\n",
	})

	diags, err := NewStyle(config.Style{MaxLineLength: 120}).Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.File != "long.go" || d.Line != 3 || d.Code != CodeLineLength {
		t.Errorf("diagnostic = %+v", d)
	}
	if !strings.Contains(d.Message, "121 characters, limit 120") {
		t.Errorf("Message = %q", d.Message)
	}
}

func TestStyle_CountsRunesNotBytes(t *testing.T) {
	// 120 multibyte runes is exactly at the limit.
	root := writeTree(t, map[string]string{
		"unicode.go": "package p\n\n// " + strings.Repeat("é", 117) + "\n",
	})

	diags, err := NewStyle(config.Style{MaxLineLength: 120}).Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("got %v, want none", diags)
	}
}

func TestStyle_ExcludedDirsSkipped(t *testing.T) {
	long := "// " + strings.Repeat("x", 150) + "\n"
	root := writeTree(t, map[string]string{
		"gen/big.go":     "package gen\n" + long,
		"normal/code.go": "package normal\n" + long,
	})

	diags, err := NewStyle(config.Style{MaxLineLength: 120, Exclude: []string{"gen"}}).Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 1 || diags[0].File != "normal/code.go" {
		t.Errorf("diags = %v, want only normal/code.go", diags)
	}
}

func TestStyle_IgnoresNonGoAndDotDirs(t *testing.T) {
	long := strings.Repeat("x", 200) + "\n"
	root := writeTree(t, map[string]string{
		"notes.txt":      long,
		".hidden/a.go":   "package a\n// " + long,
		"pkg/ok_test.go": "package pkg\n",
	})

	diags, err := NewStyle(config.Style{MaxLineLength: 120}).Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none", diags)
	}
}

func TestStyle_TestFilesAreChecked(t *testing.T) {
	root := writeTree(t, map[string]string{
		"pkg/code_test.go": "package pkg\n\n// " + strings.Repeat("y", 130) + "\n",
	})

	diags, err := NewStyle(config.Style{MaxLineLength: 120}).Run(root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(diags) != 1 {
		t.Errorf("diags = %v, want the test file flagged", diags)
	}
}
