package checks

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/matrun/matrun/internal/config"
)

// CodeLineLength flags lines longer than the configured limit.
const CodeLineLength = "ST001"

// Style checks that no source line exceeds the maximum length. The
// limit counts runes, so multibyte characters are not penalized. A
// line of exactly the limit passes.
type Style struct {
	MaxLineLength int
	exclude       *config.Matcher
}

// NewStyle builds the check from config.
func NewStyle(cfg config.Style) *Style {
	return &Style{
		MaxLineLength: cfg.MaxLineLength,
		exclude:       config.NewMatcher(cfg.Exclude),
	}
}

// Name is the gate step name.
func (s *Style) Name() string { return "style" }

// Run scans root and returns a diagnostic for every overlong line.
func (s *Style) Run(root string) ([]Diagnostic, error) {
	var diags []Diagnostic

	err := walkGoFiles(root, s.exclude, true, func(path, rel string) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", rel, err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		line := 0
		for sc.Scan() {
			line++
			if n := utf8.RuneCount(sc.Bytes()); n > s.MaxLineLength {
				diags = append(diags, Diagnostic{
					File:    rel,
					Line:    line,
					Code:    CodeLineLength,
					Message: fmt.Sprintf("line is %d characters, limit %d", n, s.MaxLineLength),
				})
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortDiagnostics(diags)
	return diags, nil
}
