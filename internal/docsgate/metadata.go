package docsgate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matrun/matrun/internal/checks"
)

// Metadata diagnostic codes. Any finding fails the metadata step;
// the documents render on package indexes, so the gate is strict.
const (
	// CodeMetaEmpty flags an empty metadata document.
	CodeMetaEmpty = "MD001"

	// CodeMetaNoTitle flags a document that does not open with a
	// title heading.
	CodeMetaNoTitle = "MD002"

	// CodeMetaUnclosedFence flags an unterminated code fence.
	CodeMetaUnclosedFence = "MD003"

	// CodeMetaDanglingRef flags a reference-style link with no
	// matching definition.
	CodeMetaDanglingRef = "MD004"

	// CodeMetaEmptyTarget flags an inline link with an empty target.
	CodeMetaEmptyTarget = "MD005"
)

var (
	refDefRe    = regexp.MustCompile(`^ {0,3}\[([^\]]+)\]:\s*\S`)
	refUseRe    = regexp.MustCompile(`\[([^\]]+)\]\[([^\]]*)\]`)
	emptyLinkRe = regexp.MustCompile(`\[[^\]]*\]\(\s*\)`)
)

// ValidateMetadata strictly checks one package metadata document. The
// rel path names the file in diagnostics.
func ValidateMetadata(root, rel string) ([]checks.Diagnostic, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var diags []checks.Diagnostic
	add := func(line int, code, format string, args ...any) {
		diags = append(diags, checks.Diagnostic{
			File:    rel,
			Line:    line,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if strings.TrimSpace(string(data)) == "" {
		add(1, CodeMetaEmpty, "document is empty")
		return diags, nil
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	if !opensWithTitle(lines) {
		add(1, CodeMetaNoTitle, "document does not open with a title heading")
	}

	// First pass collects reference definitions; they may follow
	// their uses.
	defs := map[string]bool{}
	var fenceChar byte
	for _, line := range lines {
		if m := fenceRe.FindStringSubmatch(line); m != nil {
			switch {
			case fenceChar == 0:
				fenceChar = m[1][0]
			case fenceChar == m[1][0]:
				fenceChar = 0
			}
			continue
		}
		if fenceChar != 0 {
			continue
		}
		if m := refDefRe.FindStringSubmatch(line); m != nil {
			defs[strings.ToLower(m[1])] = true
		}
	}

	fenceChar = 0
	fenceOpenAt := 0
	for i, line := range lines {
		lineNo := i + 1
		if m := fenceRe.FindStringSubmatch(line); m != nil {
			switch {
			case fenceChar == 0:
				fenceChar = m[1][0]
				fenceOpenAt = lineNo
			case fenceChar == m[1][0]:
				fenceChar = 0
			}
			continue
		}
		if fenceChar != 0 {
			continue
		}

		for _, m := range refUseRe.FindAllStringSubmatch(line, -1) {
			ref := m[2]
			if ref == "" {
				ref = m[1]
			}
			if !defs[strings.ToLower(ref)] {
				add(lineNo, CodeMetaDanglingRef, "link reference %q has no definition", ref)
			}
		}
		if emptyLinkRe.MatchString(line) {
			add(lineNo, CodeMetaEmptyTarget, "link has an empty target")
		}
	}
	if fenceChar != 0 {
		add(fenceOpenAt, CodeMetaUnclosedFence, "code fence is never closed")
	}
	return diags, nil
}

// opensWithTitle reports whether the first non-blank content is an
// ATX or setext heading. Frontmatter is skipped.
func opensWithTitle(lines []string) bool {
	i := 0
	if len(lines) > 0 && lines[i] == "---" {
		for i++; i < len(lines); i++ {
			if lines[i] == "---" {
				i++
				break
			}
		}
	}
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return true
		}
		return i+1 < len(lines) && underlineRe.MatchString(lines[i+1])
	}
	return false
}
