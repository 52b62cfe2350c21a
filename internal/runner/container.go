package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"dagger.io/dagger"
)

// ContainerConfig describes the container a matrix environment runs
// in.
type ContainerConfig struct {
	// Image is the runtime image, e.g. "golang:1.25-alpine".
	Image string

	// Source is the host project root mounted at Workdir.
	Source string

	// Exclude lists paths left out of the source mount, in the same
	// form as test discovery excludes.
	Exclude []string

	// Mounts maps extra host directories to container paths, for
	// per-environment workspaces.
	Mounts map[string]string

	// Workdir is the in-container project path. Defaults to "/src".
	Workdir string
}

// Container runs steps inside a Dagger container. Steps chain: state
// a setup step leaves behind (downloaded modules, installed tools) is
// visible to later steps, like layers in an image build.
type Container struct {
	client  *dagger.Client
	base    *dagger.Container
	current *dagger.Container
	last    *dagger.Container
	workdir string
}

// Connect starts a Dagger session. Engine output goes to logs so a
// quiet terminal stays quiet.
func Connect(ctx context.Context, logs io.Writer) (*dagger.Client, error) {
	client, err := dagger.Connect(ctx, dagger.WithLogOutput(logs))
	if err != nil {
		return nil, fmt.Errorf("connect to dagger: %w", err)
	}
	return client, nil
}

// NewContainer builds the base container: image, source mount minus
// excludes, extra mounts, workdir.
func NewContainer(client *dagger.Client, cfg ContainerConfig) (*Container, error) {
	if cfg.Image == "" {
		return nil, fmt.Errorf("container backend needs an image")
	}
	workdir := cfg.Workdir
	if workdir == "" {
		workdir = "/src"
	}

	base := client.Container().From(cfg.Image)
	if cfg.Source != "" {
		src := client.Host().Directory(cfg.Source, dagger.HostDirectoryOpts{
			Exclude: cfg.Exclude,
		})
		base = base.WithMountedDirectory(workdir, src)
	}
	for host, target := range cfg.Mounts {
		base = base.WithMountedDirectory(target, client.Host().Directory(host))
	}
	base = base.WithWorkdir(workdir)

	return &Container{
		client:  client,
		base:    base,
		current: base,
		workdir: workdir,
	}, nil
}

// Run executes the step in the current container state and advances
// it. Non-zero exits come back as results, not errors.
func (c *Container) Run(ctx context.Context, step Step) (*Result, error) {
	if len(step.Command) == 0 {
		return nil, fmt.Errorf("step %s has no command", step.Name)
	}

	next := c.current
	if step.Dir != "" {
		next = next.WithWorkdir(step.Dir)
	}
	keys := make([]string, 0, len(step.Env))
	for k := range step.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		next = next.WithEnvVariable(k, step.Env[k])
	}
	next = next.WithExec(step.Command)

	start := time.Now()
	stdout, err := next.Stdout(ctx)
	if err != nil {
		var execErr *dagger.ExecError
		if errors.As(err, &execErr) {
			c.last = next
			return &Result{
				ExitCode: execErr.ExitCode,
				Stdout:   []byte(execErr.Stdout),
				Stderr:   []byte(execErr.Stderr),
				Duration: time.Since(start),
			}, nil
		}
		return nil, fmt.Errorf("step %s in container: %w", step.Name, err)
	}
	stderr, _ := next.Stderr(ctx)

	c.current = next
	c.last = next
	return &Result{
		Stdout:   []byte(stdout),
		Stderr:   []byte(stderr),
		Duration: time.Since(start),
	}, nil
}

// Export copies a file the last step produced out of the container.
func (c *Container) Export(ctx context.Context, containerPath, hostPath string) error {
	if c.last == nil {
		return fmt.Errorf("nothing has run in the container yet")
	}
	ok, err := c.last.File(containerPath).Export(ctx, hostPath)
	if err != nil {
		return fmt.Errorf("export %s: %w", containerPath, err)
	}
	if !ok {
		return fmt.Errorf("export %s: not written", containerPath)
	}
	return nil
}
