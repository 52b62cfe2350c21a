// Package runner executes matrix and gate commands on a backend. The
// local backend runs processes directly; the container backend runs
// them in Dagger containers built from the runtime image. Both start
// from an empty environment and only see explicitly provided
// variables.
package runner

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"
)

// Step is one command executed on a backend.
type Step struct {
	// Name labels the step in reports, e.g. "setup" or "test".
	Name string

	// Command is the argv to run. The first element is the binary.
	Command []string

	// Dir is the working directory. The local backend treats it as a
	// host path; the container backend as a path inside the
	// container, defaulting to the mounted workspace.
	Dir string

	// Env is the complete environment for the command. Nothing else
	// is inherited.
	Env map[string]string
}

// Result captures a finished command. A non-zero exit is not an
// error; failing to run the command at all is.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Backend runs steps.
type Backend interface {
	Run(ctx context.Context, step Step) (*Result, error)
}

// ToolPassEnv names the host variables forwarded to gate tool
// commands, enough for toolchains to find themselves and their
// caches. Test commands get only what the config allows.
var ToolPassEnv = []string{"PATH", "HOME", "GOCACHE", "GOPATH", "GOMODCACHE", "TMPDIR"}

// BuildEnv merges explicit variables with host variables named in
// passEnv. Explicit values win. The result is sorted for stable
// command environments.
func BuildEnv(explicit map[string]string, passEnv []string) map[string]string {
	env := make(map[string]string, len(explicit)+len(passEnv))
	for _, name := range passEnv {
		if v, ok := os.LookupEnv(name); ok {
			env[name] = v
		}
	}
	for k, v := range explicit {
		env[k] = v
	}
	return env
}

// flatten renders an env map as KEY=VALUE pairs in key order.
func flatten(env map[string]string) []string {
	if len(env) == 0 {
		return []string{}
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s=%s", k, env[k]))
	}
	return out
}
