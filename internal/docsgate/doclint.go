// Package docsgate runs the documentation gate: prose lint over the
// README and docs tree, stale stub removal, a rebuild from clean, and
// strict validation of the package metadata documents. Steps run in a
// fixed order and stop at the first failure.
package docsgate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/matrun/matrun/internal/checks"
	"github.com/matrun/matrun/internal/config"
)

// Prose lint diagnostic codes.
const (
	// CodeProseLineLength flags a prose line over the limit.
	CodeProseLineLength = "DL001"

	// CodeTrailingWhitespace flags trailing spaces or tabs.
	CodeTrailingWhitespace = "DL002"

	// CodeUnderlineLength flags a setext heading underline shorter
	// than its title.
	CodeUnderlineLength = "DL003"

	// CodeUnclosedFence flags a code fence left open at end of file.
	CodeUnclosedFence = "DL004"
)

var (
	fenceRe     = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
	underlineRe = regexp.MustCompile(`^(=+|-+)$`)
)

// DocLint checks prose formatting across the README and the docs
// source tree, skipping the build output directory.
type DocLint struct {
	Source        string
	BuildDir      string
	MaxLineLength int
}

// NewDocLint builds the linter from config.
func NewDocLint(cfg config.Docs) *DocLint {
	return &DocLint{
		Source:        cfg.Source,
		BuildDir:      cfg.BuildDir,
		MaxLineLength: cfg.MaxLineLength,
	}
}

// Name is the gate step name.
func (d *DocLint) Name() string { return "doclint" }

// Run lints README.md and every markdown file under the source
// directory. A missing docs directory is not an error; README-only
// projects are fine.
func (d *DocLint) Run(root string) ([]checks.Diagnostic, error) {
	var diags []checks.Diagnostic

	readme := filepath.Join(root, "README.md")
	if _, err := os.Stat(readme); err == nil {
		fileDiags, err := d.lintFile(readme, "README.md")
		if err != nil {
			return nil, err
		}
		diags = append(diags, fileDiags...)
	}

	src := filepath.Join(root, d.Source)
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return diags, nil
	}
	buildDir := filepath.Join(root, d.BuildDir)

	err := filepath.WalkDir(src, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path == buildDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fileDiags, err := d.lintFile(path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		diags = append(diags, fileDiags...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", d.Source, err)
	}
	return diags, nil
}

func (d *DocLint) lintFile(path, rel string) ([]checks.Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var diags []checks.Diagnostic
	add := func(line int, code, format string, args ...any) {
		diags = append(diags, checks.Diagnostic{
			File:    rel,
			Line:    line,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lineNo      int
		prev        string
		inFrontmtr  bool
		fenceChar   byte
		fenceOpenAt int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		// YAML frontmatter is delimiter-to-delimiter metadata, not
		// prose.
		if lineNo == 1 && line == "---" {
			inFrontmtr = true
			continue
		}
		if inFrontmtr {
			if line == "---" {
				inFrontmtr = false
				prev = ""
			}
			continue
		}

		if m := fenceRe.FindStringSubmatch(line); m != nil {
			marker := m[1][0]
			switch {
			case fenceChar == 0:
				fenceChar = marker
				fenceOpenAt = lineNo
			case fenceChar == marker:
				fenceChar = 0
			}
			prev = line
			continue
		}
		if fenceChar != 0 {
			prev = line
			continue
		}

		if width := utf8.RuneCountInString(line); width > d.MaxLineLength {
			add(lineNo, CodeProseLineLength, "line is %d characters, limit %d", width, d.MaxLineLength)
		}
		if trimmed := strings.TrimRight(line, " \t"); trimmed != line {
			add(lineNo, CodeTrailingWhitespace, "trailing whitespace")
		}
		if underlineRe.MatchString(line) && prev != "" && !underlineRe.MatchString(prev) {
			if utf8.RuneCountInString(line) < utf8.RuneCountInString(prev) {
				add(lineNo, CodeUnderlineLength, "heading underline is shorter than its title")
			}
		}
		prev = line
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lint %s: %w", rel, err)
	}
	if fenceChar != 0 {
		add(fenceOpenAt, CodeUnclosedFence, "code fence is never closed")
	}
	return diags, nil
}
