package checks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Fixtures are transient package marker files. Some lint commands
// refuse directories that are not packages (testdata trees, fake
// roots), so the gate drops a minimal Go file into each configured
// path before linting and removes it afterwards, pass or fail.
type Fixtures struct {
	root    string
	paths   []string
	created []string
}

// NewFixtures prepares fixtures for paths relative to root. Nothing
// touches the disk until Create.
func NewFixtures(root string, paths []string) *Fixtures {
	return &Fixtures{root: root, paths: paths}
}

// Create writes each missing fixture file. A path that already
// exists is left alone and will not be removed later; the gate never
// deletes a file it did not write.
func (f *Fixtures) Create() error {
	for _, rel := range f.paths {
		full := filepath.Join(f.root, rel)
		if _, err := os.Stat(full); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat fixture %s: %w", rel, err)
		}

		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("create fixture dir for %s: %w", rel, err)
		}
		content := fmt.Sprintf("package %s\n", packageNameFor(filepath.Dir(rel)))
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return fmt.Errorf("create fixture %s: %w", rel, err)
		}
		f.created = append(f.created, full)
	}
	return nil
}

// Remove deletes every fixture Create wrote. It always tries all of
// them and reports the failures joined, so one stubborn file does not
// strand the rest.
func (f *Fixtures) Remove() error {
	var errs []error
	for _, full := range f.created {
		if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	f.created = nil
	return errors.Join(errs...)
}

// Created lists the files Create wrote, for logging.
func (f *Fixtures) Created() []string {
	return append([]string(nil), f.created...)
}

// packageNameFor derives a valid package identifier from a directory
// name.
func packageNameFor(dir string) string {
	base := filepath.Base(dir)
	var b strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "fixture"
	}
	return name
}
