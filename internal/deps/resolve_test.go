package deps

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testIndex() *Index {
	return &Index{Packages: map[string][]string{
		"github.com/go-chi/chi/v5": {"v5.0.12", "v5.1.0", "v5.1.2", "v5.2.1"},
		"github.com/google/uuid":   {"v1.5.0", "v1.6.0"},
		"gopkg.in/yaml.v3":         {"3.0.0", "3.0.1"},
	}}
}

func TestResolve_PicksHighestSatisfying(t *testing.T) {
	reqs := []Requirement{
		mustParse(t, "github.com/go-chi/chi/v5>=v5.1,<v5.2"),
		mustParse(t, "github.com/google/uuid"),
	}

	lock, err := Resolve(reqs, testIndex())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if v, _ := lock.Version("github.com/go-chi/chi/v5"); v != "v5.1.2" {
		t.Errorf("chi version = %q, want v5.1.2", v)
	}
	if v, _ := lock.Version("github.com/google/uuid"); v != "v1.6.0" {
		t.Errorf("uuid version = %q, want v1.6.0", v)
	}
}

func TestResolve_DeterministicOrder(t *testing.T) {
	reqs := []Requirement{
		mustParse(t, "gopkg.in/yaml.v3"),
		mustParse(t, "github.com/google/uuid"),
	}

	lock, err := Resolve(reqs, testIndex())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(lock.Packages) != 2 {
		t.Fatalf("locked %d packages, want 2", len(lock.Packages))
	}
	if lock.Packages[0].Name != "github.com/google/uuid" {
		t.Errorf("first locked package = %q, want uuid first", lock.Packages[0].Name)
	}
}

func TestResolve_NormalizesIndexVersions(t *testing.T) {
	lock, err := Resolve([]Requirement{mustParse(t, "gopkg.in/yaml.v3>=v3.0.1")}, testIndex())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v, _ := lock.Version("gopkg.in/yaml.v3"); v != "v3.0.1" {
		t.Errorf("yaml version = %q, want canonical v3.0.1", v)
	}
}

func TestResolve_UnknownPackage(t *testing.T) {
	_, err := Resolve([]Requirement{mustParse(t, "nope/missing")}, testIndex())

	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatalf("error = %v, want ErrUnsatisfiable", err)
	}
	var unsat *UnsatisfiableError
	if !errors.As(err, &unsat) {
		t.Fatalf("error = %v, want *UnsatisfiableError", err)
	}
	if unsat.Requirement.Name != "nope/missing" {
		t.Errorf("Requirement.Name = %q", unsat.Requirement.Name)
	}
	if len(unsat.Available) != 0 {
		t.Errorf("Available = %v, want empty", unsat.Available)
	}
}

func TestResolve_NoSatisfyingVersion(t *testing.T) {
	_, err := Resolve([]Requirement{mustParse(t, "github.com/google/uuid>=v2")}, testIndex())

	var unsat *UnsatisfiableError
	if !errors.As(err, &unsat) {
		t.Fatalf("error = %v, want *UnsatisfiableError", err)
	}
	if len(unsat.Available) != 2 {
		t.Errorf("Available = %v, want the two indexed versions", unsat.Available)
	}
}

func TestResolve_MergedConstraintsAcrossManifests(t *testing.T) {
	reqs := []Requirement{
		mustParse(t, "github.com/go-chi/chi/v5>=v5.0"),
		mustParse(t, "github.com/go-chi/chi/v5<v5.1"),
	}

	lock, err := Resolve(reqs, testIndex())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v, _ := lock.Version("github.com/go-chi/chi/v5"); v != "v5.0.12" {
		t.Errorf("chi version = %q, want v5.0.12", v)
	}
}

func TestParseManifest_IncludesAndComments(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.list")
	extra := filepath.Join(dir, "extra.list")
	writeFile(t, base, "# base deps\ngithub.com/google/uuid>=v1.5\n\n-r extra.list\n")
	writeFile(t, extra, "gopkg.in/yaml.v3==v3.0.1 # pinned\n")

	reqs, err := ParseManifest(base)
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("parsed %d requirements, want 2", len(reqs))
	}
	if reqs[1].String() != "gopkg.in/yaml.v3==v3.0.1" {
		t.Errorf("included requirement = %q", reqs[1].String())
	}
}

func TestParseManifest_IncludeCycle(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.list")
	b := filepath.Join(dir, "b.list")
	writeFile(t, a, "-r b.list\n")
	writeFile(t, b, "-r a.list\n")

	if _, err := ParseManifest(a); err == nil {
		t.Fatal("expected cycle error")
	}
}

func TestParseManifest_BadLineReportsPosition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.list")
	writeFile(t, path, "ok-package\nbroken>=nope\n")

	_, err := ParseManifest(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	want := path + ":2"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error %q does not mention %q", got, want)
	}
}

func TestLockfile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lock.json")

	lock := &Lockfile{Packages: []LockedPackage{
		{Name: "a", Version: "v1.0.0"},
		{Name: "b", Version: "v2.3.4"},
	}}
	if err := lock.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := ReadLockfile(path)
	if err != nil {
		t.Fatalf("ReadLockfile: %v", err)
	}
	if v, ok := got.Version("b"); !ok || v != "v2.3.4" {
		t.Errorf("Version(b) = %q, %v", v, ok)
	}
}

func TestLoadIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.yaml")
	writeFile(t, path, "packages:\n  a: [\"1.0.0\", \"1.2.0\"]\n")

	idx, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	versions, ok := idx.Versions("a")
	if !ok {
		t.Fatal("package a missing")
	}
	if versions[len(versions)-1] != "v1.2.0" {
		t.Errorf("highest version = %q, want v1.2.0", versions[len(versions)-1])
	}

	writeFile(t, path, "packages:\n  a: [\"oops\"]\n")
	if _, err := LoadIndex(path); err == nil {
		t.Error("expected error for invalid version in index")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
