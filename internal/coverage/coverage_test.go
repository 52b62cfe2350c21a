package coverage

import (
	"math"
	"strings"
	"testing"
)

const sampleProfile = `mode: set
example.com/demo/a.go:10.2,12.16 2 1
example.com/demo/a.go:15.2,18.3 3 0
example.com/demo/a.go:19.2,20.3 1 0
example.com/demo/a.go:30.2,31.3 1 1
example.com/demo/b.go:5.1,7.2 4 1
`

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleProfile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Mode != "set" {
		t.Errorf("Mode = %q, want set", p.Mode)
	}
	if len(p.Files) != 2 {
		t.Fatalf("parsed %d files, want 2", len(p.Files))
	}

	a := p.Files[0]
	if a.Name != "example.com/demo/a.go" {
		t.Errorf("Files[0].Name = %q", a.Name)
	}
	if a.Statements != 7 || a.Covered != 3 {
		t.Errorf("a.go statements/covered = %d/%d, want 7/3", a.Statements, a.Covered)
	}

	b := p.Files[1]
	if b.Statements != 4 || b.Covered != 4 {
		t.Errorf("b.go statements/covered = %d/%d, want 4/4", b.Statements, b.Covered)
	}
	if len(b.Missing) != 0 {
		t.Errorf("b.go Missing = %v, want none", b.Missing)
	}
}

func TestParse_MergesAdjacentMissingRanges(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleProfile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// 15-18 and 19-20 are adjacent and merge into one range.
	a := p.Files[0]
	if len(a.Missing) != 1 {
		t.Fatalf("Missing = %v, want a single merged range", a.Missing)
	}
	if a.Missing[0].Start != 15 || a.Missing[0].End != 20 {
		t.Errorf("Missing[0] = %v, want 15-20", a.Missing[0])
	}
	if got := a.Missing[0].String(); got != "15-20" {
		t.Errorf("String() = %q, want 15-20", got)
	}
}

func TestPercent(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleProfile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// 7 of 11 statements covered.
	want := 7.0 / 11.0 * 100
	if got := p.Percent(); math.Abs(got-want) > 0.001 {
		t.Errorf("Percent() = %.3f, want %.3f", got, want)
	}

	a := p.Files[0]
	if got := a.Percent(); math.Abs(got-3.0/7.0*100) > 0.001 {
		t.Errorf("a.go Percent() = %.3f", got)
	}
}

func TestPercent_NoStatements(t *testing.T) {
	p, err := Parse(strings.NewReader("mode: atomic\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := p.Percent(); got != 100 {
		t.Errorf("Percent() = %v, want 100 for empty profile", got)
	}
}

func TestParse_CountModeTreatsPositiveAsCovered(t *testing.T) {
	p, err := Parse(strings.NewReader("mode: count\nx.go:1.1,2.2 2 17\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Files[0].Covered != 2 {
		t.Errorf("Covered = %d, want 2", p.Files[0].Covered)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no mode header", input: "x.go:1.1,2.2 1 1\n"},
		{name: "bad block", input: "mode: set\nx.go:banana\n"},
		{name: "no colon", input: "mode: set\njust-words\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParse_WindowsPathWithColon(t *testing.T) {
	p, err := Parse(strings.NewReader("mode: set\nC:/src/x.go:1.1,2.2 1 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Files[0].Name != "C:/src/x.go" {
		t.Errorf("Name = %q, want C:/src/x.go", p.Files[0].Name)
	}
}

func TestLineRange_SingleLine(t *testing.T) {
	if got := (LineRange{Start: 4, End: 4}).String(); got != "4" {
		t.Errorf("String() = %q, want 4", got)
	}
}
