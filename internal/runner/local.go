package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// Local runs steps as host processes. Commands get only the step's
// environment, never the host's, so a run cannot depend on variables
// the config does not declare.
type Local struct{}

// NewLocal returns a host-process backend.
func NewLocal() *Local {
	return &Local{}
}

// Run executes the step and waits for it. On cancellation the whole
// process group is killed, so test children do not outlive the run.
func (l *Local) Run(ctx context.Context, step Step) (*Result, error) {
	if len(step.Command) == 0 {
		return nil, fmt.Errorf("step %s has no command", step.Name)
	}

	cmd := exec.Command(step.Command[0], step.Command[1:]...)
	cmd.Dir = step.Dir
	cmd.Env = flatten(step.Env)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", step.Command[0], err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	var waitErr error
	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			// Negative pid addresses the process group.
			syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		<-done
		return nil, fmt.Errorf("step %s: %w", step.Name, ctx.Err())
	case waitErr = <-done:
	}

	res := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}
	if waitErr != nil {
		exitErr, ok := waitErr.(*exec.ExitError)
		if !ok {
			return nil, fmt.Errorf("run %s: %w", step.Command[0], waitErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}
