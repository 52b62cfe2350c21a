package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFixtures_CreateAndRemove(t *testing.T) {
	root := t.TempDir()
	f := NewFixtures(root, []string{"testdata/fake/doc.go", "internal/stub/doc.go"})

	if err := f.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(f.Created()) != 2 {
		t.Fatalf("Created() = %v, want 2 files", f.Created())
	}

	content, err := os.ReadFile(filepath.Join(root, "testdata/fake/doc.go"))
	if err != nil {
		t.Fatalf("fixture not written: %v", err)
	}
	if got := string(content); got != "package fake\n" {
		t.Errorf("fixture content = %q, want package marker", got)
	}

	if err := f.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	for _, rel := range []string{"testdata/fake/doc.go", "internal/stub/doc.go"} {
		if _, err := os.Stat(filepath.Join(root, rel)); !os.IsNotExist(err) {
			t.Errorf("fixture %s still present after Remove", rel)
		}
	}
}

func TestFixtures_ExistingFileIsLeftAlone(t *testing.T) {
	root := writeTree(t, map[string]string{"pkg/doc.go": "package pkg // original\n"})
	f := NewFixtures(root, []string{"pkg/doc.go"})

	if err := f.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(f.Created()) != 0 {
		t.Errorf("Created() = %v, want none for pre-existing file", f.Created())
	}

	if err := f.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(root, "pkg/doc.go"))
	if err != nil {
		t.Fatalf("pre-existing file was removed: %v", err)
	}
	if !strings.Contains(string(content), "original") {
		t.Errorf("pre-existing file was rewritten: %q", content)
	}
}

func TestFixtures_RemoveIsIdempotent(t *testing.T) {
	root := t.TempDir()
	f := NewFixtures(root, []string{"a/doc.go"})

	if err := f.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := f.Remove(); err != nil {
		t.Fatalf("first Remove: %v", err)
	}
	if err := f.Remove(); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestPackageNameFor(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{dir: "testdata/fake", want: "fake"},
		{dir: "test-data", want: "testdata"},
		{dir: "1weird", want: "fixture"},
		{dir: ".", want: "fixture"},
	}
	for _, tt := range tests {
		if got := packageNameFor(tt.dir); got != tt.want {
			t.Errorf("packageNameFor(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
