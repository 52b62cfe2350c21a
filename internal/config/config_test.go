package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
project: demo
local_prefix: example.com/demo

matrix:
  runtimes:
    - name: go1.24
      image: golang:1.24-alpine
    - name: go1.25
      image: golang:1.25-alpine
  frameworks:
    - name: chi
      package: github.com/go-chi/chi/v5
      ranges: ["v5.1", "v5.2"]

deps:
  manifests: ["deps/base.list"]
  index: deps/index.yaml

test:
  command: ["go", "test", "./..."]
`

func TestParse_Minimal(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Project)
	assert.Len(t, cfg.Matrix.Runtimes, 2)
	assert.Len(t, cfg.Matrix.Frameworks, 1)

	// Defaults.
	assert.Equal(t, "local", cfg.Test.Backend)
	assert.Equal(t, "go1.24", cfg.Matrix.Runtimes[0].Command)
	assert.Equal(t, 120, cfg.Quality.Style.MaxLineLength)
	assert.Equal(t, DefaultCheckExclude, cfg.Quality.Style.Exclude)
	assert.Equal(t, DefaultDocIgnore, cfg.Quality.Doc.Ignore)
	assert.Equal(t, DefaultCheckExclude, cfg.Quality.Doc.Exclude)
	assert.Equal(t, "example.com/demo", cfg.Quality.Imports.Local)
	assert.Equal(t, []string{"."}, cfg.Quality.Imports.Scopes)
	assert.Equal(t, "docs", cfg.Docs.Source)
	assert.Equal(t, "docs/_build", cfg.Docs.BuildDir)
	assert.Equal(t, 120, cfg.Docs.MaxLineLength)
}

func TestParse_RuntimeEnvAndPublish(t *testing.T) {
	cfg, err := Parse([]byte(`
project: demo
matrix:
  runtimes:
    - name: go1.24
      env: {GOFLAGS: -mod=mod}
test:
  command: ["go", "test"]
publish:
  bucket: ci-reports
  prefix: teams/demo
`))
	require.NoError(t, err)
	assert.Equal(t, "-mod=mod", cfg.Matrix.Runtimes[0].Env["GOFLAGS"])
	assert.Equal(t, "ci-reports", cfg.Publish.Bucket)
	assert.Equal(t, "teams/demo", cfg.Publish.Prefix)
}

func TestParse_ExplicitEmptyDocIgnore(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML + `
quality:
  doccomment:
    ignore: []
`))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Quality.Doc.Ignore)
	assert.Empty(t, cfg.Quality.Doc.Ignore)
}

func TestParse_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty document", yaml: ""},
		{name: "unknown top-level key", yaml: minimalYAML + "\nbogus: 1\n"},
		{name: "missing project", yaml: `
matrix:
  runtimes: [{name: go1.24}]
test:
  command: ["go", "test"]
`},
		{name: "missing test command", yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
test:
  backend: local
`},
		{name: "bad backend", yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
test:
  backend: remote
  command: ["go", "test"]
`},
		{name: "command not a list", yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
test:
  command: "go test"
`},
		{name: "unknown publish key", yaml: minimalYAML + `
publish:
  bucket: b
  region: us-east-1
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_SemanticRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate runtime",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}, {name: go1.24}]
test:
  command: ["go", "test"]
`,
			want: "duplicate runtime",
		},
		{
			name: "invalid framework range",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
  frameworks:
    - {name: chi, package: github.com/go-chi/chi/v5, ranges: ["nope"]}
deps:
  index: deps/index.yaml
test:
  command: ["go", "test"]
`,
			want: "invalid range",
		},
		{
			name: "exclude references unknown runtime",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
  exclude: [{runtime: go9.99}]
test:
  command: ["go", "test"]
`,
			want: "unknown runtime",
		},
		{
			name: "frameworks without index",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
  frameworks:
    - {name: chi, package: github.com/go-chi/chi/v5, ranges: ["v5.1"]}
test:
  command: ["go", "test"]
`,
			want: "deps.index is required",
		},
		{
			name: "container backend without image",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
test:
  backend: container
  command: ["go", "test"]
`,
			want: "needs an image",
		},
		{
			name: "bad timeout",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
test:
  command: ["go", "test"]
  timeout: banana
`,
			want: "invalid duration",
		},
		{
			name: "absolute fixture path",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
test:
  command: ["go", "test"]
quality:
  fixtures: ["/etc/passwd"]
`,
			want: "must be relative",
		},
		{
			name: "fixture escapes root",
			yaml: `
project: demo
matrix:
  runtimes: [{name: go1.24}]
test:
  command: ["go", "test"]
quality:
  fixtures: ["../outside/doc.go"]
`,
			want: "escapes the project root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := Find("")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("x"), 0o644))
	got, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, got)

	t.Setenv("MATRUN_CONFIG", "elsewhere.yaml")
	got, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, "elsewhere.yaml", got)

	got, err = Find("explicit.yaml")
	require.NoError(t, err)
	assert.Equal(t, "explicit.yaml", got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestTimeoutDuration(t *testing.T) {
	assert.Zero(t, Test{}.TimeoutDuration())
	assert.Equal(t, "10m0s", Test{Timeout: "10m"}.TimeoutDuration().String())
}
