package deps

import (
	"strings"
	"testing"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{name: "bare package", line: "github.com/google/uuid", want: "github.com/google/uuid"},
		{name: "exact pin", line: "github.com/google/uuid==v1.6.0", want: "github.com/google/uuid==v1.6.0"},
		{name: "range pair", line: "chi>=v5.1,<v6", want: "chi>=v5.1,<v6"},
		{name: "missing v added", line: "chi>=5.1", want: "chi>=v5.1"},
		{name: "spaces around constraints", line: "chi >= v5.1 , < v6", want: "chi>=v5.1,<v6"},
		{name: "not equal", line: "chi!=v5.0.8", want: "chi!=v5.0.8"},
		{name: "empty line", line: "", wantErr: true},
		{name: "no name", line: ">=v1.0", wantErr: true},
		{name: "bad version", line: "chi>=banana", wantErr: true},
		{name: "bad operator", line: "chi~v1.0", wantErr: true},
		{name: "name with space", line: "a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequirement(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRequirement(%q) succeeded, want error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRequirement(%q): %v", tt.line, err)
			}
			if got := req.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequirement_Satisfies(t *testing.T) {
	tests := []struct {
		name    string
		req     string
		version string
		want    bool
	}{
		{name: "any accepts all", req: "p", version: "v0.0.1", want: true},
		{name: "exact match", req: "p==v1.2.3", version: "v1.2.3", want: true},
		{name: "exact mismatch", req: "p==v1.2.3", version: "v1.2.4", want: false},
		{name: "shortened equals zero-filled", req: "p==v1.2", version: "v1.2.0", want: true},
		{name: "range inside", req: "p>=v5.1,<v5.2", version: "v5.1.9", want: true},
		{name: "range below", req: "p>=v5.1,<v5.2", version: "v5.0.12", want: false},
		{name: "range at upper bound", req: "p>=v5.1,<v5.2", version: "v5.2.0", want: false},
		{name: "not equal excludes", req: "p!=v1.0.0", version: "v1.0.0", want: false},
		{name: "missing v in candidate", req: "p>=v1.0", version: "1.4.0", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequirement(tt.req)
			if err != nil {
				t.Fatalf("ParseRequirement(%q): %v", tt.req, err)
			}
			if got := req.Satisfies(tt.version); got != tt.want {
				t.Errorf("Satisfies(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestRangeRequirement(t *testing.T) {
	tests := []struct {
		rng  string
		want string
	}{
		{rng: "v5.1", want: "p>=v5.1,<v5.2"},
		{rng: "5.1", want: "p>=v5.1,<v5.2"},
		{rng: "v2", want: "p>=v2,<v3"},
		{rng: "v1.9.3", want: "p>=v1.9.3,<v1.10"},
	}

	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			req, err := RangeRequirement("p", tt.rng)
			if err != nil {
				t.Fatalf("RangeRequirement: %v", err)
			}
			if got := req.String(); got != tt.want {
				t.Errorf("RangeRequirement(%q) = %q, want %q", tt.rng, got, tt.want)
			}
		})
	}

	if _, err := RangeRequirement("p", "not-a-version"); err == nil {
		t.Error("expected error for invalid range")
	}
}

func TestRangeRequirement_MinorBoundary(t *testing.T) {
	req, err := RangeRequirement("p", "v5.1")
	if err != nil {
		t.Fatalf("RangeRequirement: %v", err)
	}

	for version, want := range map[string]bool{
		"v5.1.0":  true,
		"v5.1.12": true,
		"v5.2.0":  false,
		"v5.0.9":  false,
	} {
		if got := req.Satisfies(version); got != want {
			t.Errorf("Satisfies(%q) = %v, want %v", version, got, want)
		}
	}
}

func TestMerge(t *testing.T) {
	reqs := []Requirement{
		mustParse(t, "a>=v1"),
		mustParse(t, "b"),
		mustParse(t, "a<v2"),
	}

	merged := Merge(reqs)
	if len(merged) != 2 {
		t.Fatalf("Merge returned %d requirements, want 2", len(merged))
	}
	if got := merged[0].String(); got != "a>=v1,<v2" {
		t.Errorf("merged[0] = %q, want %q", got, "a>=v1,<v2")
	}
	if merged[1].Name != "b" {
		t.Errorf("merged[1].Name = %q, want %q", merged[1].Name, "b")
	}
}

func mustParse(t *testing.T, line string) Requirement {
	t.Helper()
	req, err := ParseRequirement(line)
	if err != nil {
		t.Fatalf("ParseRequirement(%q): %v", line, err)
	}
	return req
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "# full line", want: ""},
		{in: "pkg>=v1 # trailing", want: "pkg>=v1"},
		{in: "pkg>=v1", want: "pkg>=v1"},
		{in: "   ", want: ""},
	}
	for _, tt := range tests {
		if got := stripComment(tt.in); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := stripComment("pkg#fragment>=v1"); !strings.Contains(got, "#fragment") {
		t.Errorf("stripComment kept %q, want fragment preserved", got)
	}
}
