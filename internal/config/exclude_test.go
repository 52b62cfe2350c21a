package config

import "testing"

func TestMatcher(t *testing.T) {
	m := NewMatcher([]string{"vendor", "docs/_build", "**/*.gen.go", "", "."})

	tests := []struct {
		path string
		want bool
	}{
		{path: "vendor", want: true},
		{path: "vendor/lib/a.go", want: true},
		{path: "internal/vendor/b.go", want: true},
		{path: "vendored/c.go", want: false},
		{path: "docs/_build", want: true},
		{path: "docs/_build/html/index.html", want: true},
		{path: "docs/index.md", want: false},
		{path: "internal/api/client.gen.go", want: true},
		{path: "internal/api/client.go", want: false},
		{path: "./docs/_build/x", want: true},
		{path: ".", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMatcher_Empty(t *testing.T) {
	m := NewMatcher(nil)
	if m.Match("anything/at/all.go") {
		t.Error("empty matcher should match nothing")
	}
	if len(m.Patterns()) != 0 {
		t.Errorf("Patterns() = %v, want empty", m.Patterns())
	}
}
