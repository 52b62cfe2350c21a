package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working
// directory when no explicit path is given.
const DefaultFile = "matrun.yaml"

// DefaultDocIgnore is the set of doc comment rule codes ignored when
// the config does not list its own. Package comments, method comments,
// const/var comments and the trailing-period rule are advisory by
// default; missing docs on exported types and functions still fail.
var DefaultDocIgnore = []string{"DC001", "DC004", "DC005", "DC102"}

// DefaultCheckExclude is applied when a source check configures no
// excludes: generated trees nobody's style rules should police. Dot
// directories are always skipped by the walker.
var DefaultCheckExclude = []string{"migrations", "vendor"}

// Config is the parsed matrun.yaml.
type Config struct {
	// Project names the project; it prefixes derived artifacts such
	// as workspace directories and published object keys.
	Project string `yaml:"project"`

	// LocalPrefix is the module path treated as the local import
	// group by the import order check.
	LocalPrefix string `yaml:"local_prefix"`

	Matrix  Matrix  `yaml:"matrix"`
	Deps    Deps    `yaml:"deps"`
	Test    Test    `yaml:"test"`
	Quality Quality `yaml:"quality"`
	Docs    Docs    `yaml:"docs"`
	Publish Publish `yaml:"publish"`
}

// Matrix declares the runtime and framework axes. Environments are
// the cross product of runtimes and framework ranges, minus excludes.
type Matrix struct {
	Runtimes   []Runtime       `yaml:"runtimes"`
	Frameworks []Framework     `yaml:"frameworks"`
	Exclude    []MatrixExclude `yaml:"exclude"`
}

// Runtime is one toolchain the matrix runs under.
type Runtime struct {
	Name string `yaml:"name"`

	// Command is the toolchain binary used by the local backend.
	// Defaults to the runtime name.
	Command string `yaml:"command"`

	// Image is the container image used by the container backend.
	Image string `yaml:"image"`

	// Env is set for commands in this runtime's environments, on top
	// of the test env.
	Env map[string]string `yaml:"env"`
}

// Framework is one library dimension of the matrix. Each entry in
// Ranges becomes its own set of environments, with the package pinned
// to that compatible-release range during resolution.
type Framework struct {
	Name    string   `yaml:"name"`
	Package string   `yaml:"package"`
	Ranges  []string `yaml:"ranges"`
}

// MatrixExclude removes combinations from the cross product. An empty
// Range matches every range of the framework.
type MatrixExclude struct {
	Runtime   string `yaml:"runtime"`
	Framework string `yaml:"framework"`
	Range     string `yaml:"range"`
}

// Deps locates the requirement manifests and the version index used
// to resolve them.
type Deps struct {
	Manifests []string `yaml:"manifests"`
	Index     string   `yaml:"index"`
}

// Test configures per-environment execution.
type Test struct {
	// Backend selects where commands run: "local" or "container".
	Backend string `yaml:"backend"`

	// Setup commands run after resolution and before the test
	// command, in order.
	Setup [][]string `yaml:"setup"`

	// Command is the test invocation. The literal ${COVERPROFILE}
	// expands to the environment's coverage profile path.
	Command []string `yaml:"command"`

	// Env is set for every command, on top of a clean environment.
	Env map[string]string `yaml:"env"`

	// PassEnv names host variables forwarded into commands. Nothing
	// else from the host environment leaks through.
	PassEnv []string `yaml:"pass_env"`

	// Excludes are paths left out of test discovery and of container
	// workspace mounts.
	Excludes []string `yaml:"excludes"`

	// Timeout bounds a single environment, e.g. "10m". Empty means
	// no limit.
	Timeout string `yaml:"timeout"`

	Coverage Coverage `yaml:"coverage"`
}

// Coverage sets the minimum acceptable statement coverage. Zero
// disables the threshold.
type Coverage struct {
	Min float64 `yaml:"min"`
}

// Quality configures the quality gate checks.
type Quality struct {
	// Lint commands run first, in order.
	Lint [][]string `yaml:"lint"`

	// Compat commands run after Lint and surface constructs the next
	// toolchain generation rejects.
	Compat [][]string `yaml:"compat"`

	Style   Style      `yaml:"style"`
	Doc     DocComment `yaml:"doccomment"`
	Imports Imports    `yaml:"imports"`

	// Fixtures are package marker files created before the lint
	// commands and removed after the gate, pass or fail.
	Fixtures []string `yaml:"fixtures"`
}

// Style configures the line length check. A nil Exclude applies
// DefaultCheckExclude; an explicit empty list excludes nothing.
type Style struct {
	MaxLineLength int      `yaml:"max_line_length"`
	Exclude       []string `yaml:"exclude"`
}

// DocComment configures the doc comment check. A nil Ignore applies
// DefaultDocIgnore; an explicit empty list ignores nothing.
type DocComment struct {
	Ignore  []string `yaml:"ignore"`
	Exclude []string `yaml:"exclude"`
}

// Imports configures the import order check.
type Imports struct {
	// Local overrides the top-level LocalPrefix for this check.
	Local string `yaml:"local"`

	// Scopes are the directories scanned, relative to the project
	// root.
	Scopes []string `yaml:"scopes"`
}

// Publish names where run reports are uploaded. Both fields override
// the MATRUN_S3_* defaults; credentials only ever come from the
// environment.
type Publish struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

// Docs configures the documentation gate.
type Docs struct {
	Source        string            `yaml:"source"`
	BuildDir      string            `yaml:"build_dir"`
	MaxLineLength int               `yaml:"max_line_length"`
	Stubs         []string          `yaml:"stubs"`
	Build         [][]string        `yaml:"build"`
	Env           map[string]string `yaml:"env"`
	Metadata      []string          `yaml:"metadata"`
}

// Load reads, schema-checks and validates a config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds a Config from raw YAML. The document is validated
// against the config schema before decoding, then semantically after
// defaults are applied.
func Parse(raw []byte) (*Config, error) {
	if err := validateRaw(raw); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find resolves the config path: the explicit flag wins, then the
// MATRUN_CONFIG environment variable, then matrun.yaml in the working
// directory.
func Find(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if p := os.Getenv("MATRUN_CONFIG"); p != "" {
		return p, nil
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	}
	return "", fmt.Errorf("no %s in the current directory (set --config or MATRUN_CONFIG)", DefaultFile)
}

func (c *Config) applyDefaults() {
	for i := range c.Matrix.Runtimes {
		if c.Matrix.Runtimes[i].Command == "" {
			c.Matrix.Runtimes[i].Command = c.Matrix.Runtimes[i].Name
		}
	}

	if c.Test.Backend == "" {
		c.Test.Backend = "local"
	}
	if len(c.Test.Excludes) == 0 {
		c.Test.Excludes = []string{".git", ".matrun"}
	}

	if c.Quality.Style.MaxLineLength == 0 {
		c.Quality.Style.MaxLineLength = 120
	}
	if c.Quality.Style.Exclude == nil {
		c.Quality.Style.Exclude = append([]string(nil), DefaultCheckExclude...)
	}
	if c.Quality.Doc.Ignore == nil {
		c.Quality.Doc.Ignore = append([]string(nil), DefaultDocIgnore...)
	}
	if c.Quality.Doc.Exclude == nil {
		c.Quality.Doc.Exclude = append([]string(nil), DefaultCheckExclude...)
	}
	if c.Quality.Imports.Local == "" {
		c.Quality.Imports.Local = c.LocalPrefix
	}
	if len(c.Quality.Imports.Scopes) == 0 {
		c.Quality.Imports.Scopes = []string{"."}
	}

	if c.Docs.Source == "" {
		c.Docs.Source = "docs"
	}
	if c.Docs.BuildDir == "" {
		c.Docs.BuildDir = c.Docs.Source + "/_build"
	}
	if c.Docs.MaxLineLength == 0 {
		c.Docs.MaxLineLength = 120
	}
}

// TimeoutDuration returns the parsed per-environment timeout, zero
// when unset. Validate has already checked the format.
func (t Test) TimeoutDuration() time.Duration {
	if t.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(t.Timeout)
	if err != nil {
		return 0
	}
	return d
}
