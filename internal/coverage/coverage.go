// Package coverage parses Go cover profiles and reduces them to the
// per-file numbers reports need: statement percentages and the line
// ranges tests never reached.
package coverage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// LineRange is a contiguous span of uncovered lines.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r LineRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// FileCoverage aggregates one source file.
type FileCoverage struct {
	Name       string      `json:"name"`
	Statements int         `json:"statements"`
	Covered    int         `json:"covered"`
	Missing    []LineRange `json:"missing,omitempty"`
}

// Percent is the covered share of statements. A file with no
// statements counts as fully covered.
func (f FileCoverage) Percent() float64 {
	if f.Statements == 0 {
		return 100
	}
	return float64(f.Covered) / float64(f.Statements) * 100
}

// Profile is a parsed cover profile.
type Profile struct {
	Mode  string         `json:"mode"`
	Files []FileCoverage `json:"files"`
}

// Percent is the overall covered share of statements.
func (p *Profile) Percent() float64 {
	var statements, covered int
	for _, f := range p.Files {
		statements += f.Statements
		covered += f.Covered
	}
	if statements == 0 {
		return 100
	}
	return float64(covered) / float64(statements) * 100
}

type block struct {
	startLine, endLine int
	statements, count  int
}

// ParseFile reads a cover profile from disk.
func ParseFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cover profile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the "mode:" header and the coverage blocks that follow.
// Block lines look like
//
//	path/file.go:10.2,12.16 2 1
//
// giving the span, its statement count and how often it ran.
func Parse(r io.Reader) (*Profile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read cover profile: %w", err)
		}
		return nil, fmt.Errorf("cover profile is empty")
	}
	first := strings.TrimSpace(sc.Text())
	mode, ok := strings.CutPrefix(first, "mode: ")
	if !ok {
		return nil, fmt.Errorf("cover profile missing mode header, got %q", first)
	}

	blocks := map[string][]block{}
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		name, b, err := parseBlock(line)
		if err != nil {
			return nil, fmt.Errorf("cover profile line %d: %w", lineNo, err)
		}
		blocks[name] = append(blocks[name], b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cover profile: %w", err)
	}

	p := &Profile{Mode: mode}
	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fc := FileCoverage{Name: name}
		var missed []LineRange
		for _, b := range blocks[name] {
			fc.Statements += b.statements
			if b.count > 0 {
				fc.Covered += b.statements
			} else if b.statements > 0 {
				missed = append(missed, LineRange{Start: b.startLine, End: b.endLine})
			}
		}
		fc.Missing = mergeRanges(missed)
		p.Files = append(p.Files, fc)
	}
	return p, nil
}

func parseBlock(line string) (string, block, error) {
	colon := strings.LastIndex(line, ":")
	if colon < 0 {
		return "", block{}, fmt.Errorf("malformed block %q", line)
	}
	name := line[:colon]

	var b block
	var startCol, endCol int
	_, err := fmt.Sscanf(line[colon+1:], "%d.%d,%d.%d %d %d",
		&b.startLine, &startCol, &b.endLine, &endCol, &b.statements, &b.count)
	if err != nil {
		return "", block{}, fmt.Errorf("malformed block %q", line)
	}
	return name, b, nil
}

// mergeRanges sorts and coalesces overlapping or adjacent ranges.
func mergeRanges(ranges []LineRange) []LineRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})

	merged := []LineRange{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End+1 {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
