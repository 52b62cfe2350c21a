package runner

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLocal_CapturesOutput(t *testing.T) {
	res, err := NewLocal().Run(context.Background(), Step{
		Name:    "echo",
		Command: []string{"sh", "-c", "echo out; echo err >&2"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if got := strings.TrimSpace(string(res.Stdout)); got != "out" {
		t.Errorf("Stdout = %q, want out", got)
	}
	if got := strings.TrimSpace(string(res.Stderr)); got != "err" {
		t.Errorf("Stderr = %q, want err", got)
	}
	if res.Duration <= 0 {
		t.Error("Duration not recorded")
	}
}

func TestLocal_NonZeroExitIsNotAnError(t *testing.T) {
	res, err := NewLocal().Run(context.Background(), Step{
		Name:    "fail",
		Command: []string{"sh", "-c", "exit 3"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestLocal_MissingBinaryIsAnError(t *testing.T) {
	_, err := NewLocal().Run(context.Background(), Step{
		Name:    "nope",
		Command: []string{"definitely-not-a-binary-9a7f"},
	})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestLocal_EmptyCommand(t *testing.T) {
	if _, err := NewLocal().Run(context.Background(), Step{Name: "empty"}); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestLocal_HostEnvDoesNotLeak(t *testing.T) {
	t.Setenv("MATRUN_TEST_LEAK", "visible")

	res, err := NewLocal().Run(context.Background(), Step{
		Name:    "leak",
		Command: []string{"sh", "-c", `printf "%s" "$MATRUN_TEST_LEAK"`},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := string(res.Stdout); got != "" {
		t.Errorf("host variable leaked into step: %q", got)
	}
}

func TestLocal_ExplicitEnvIsVisible(t *testing.T) {
	res, err := NewLocal().Run(context.Background(), Step{
		Name:    "env",
		Command: []string{"sh", "-c", `printf "%s" "$GREETING"`},
		Env:     map[string]string{"GREETING": "hello"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := string(res.Stdout); got != "hello" {
		t.Errorf("Stdout = %q, want hello", got)
	}
}

func TestLocal_RunsInDir(t *testing.T) {
	dir := t.TempDir()
	res, err := NewLocal().Run(context.Background(), Step{
		Name:    "pwd",
		Command: []string{"pwd"},
		Dir:     dir,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := strings.TrimSpace(string(res.Stdout))
	if !strings.HasSuffix(got, dir) && got != dir {
		t.Errorf("pwd = %q, want %q", got, dir)
	}
}

func TestLocal_CancellationKillsProcess(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewLocal().Run(ctx, Step{
		Name:    "sleep",
		Command: []string{"sleep", "30"},
	})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if elapsed > 5*time.Second {
		t.Errorf("cancellation took %v, process was not killed", elapsed)
	}
}

func TestBuildEnv(t *testing.T) {
	t.Setenv("MATRUN_TEST_PASS", "from-host")
	t.Setenv("MATRUN_TEST_SHADOWED", "host-value")

	env := BuildEnv(
		map[string]string{"EXPLICIT": "yes", "MATRUN_TEST_SHADOWED": "explicit-value"},
		[]string{"MATRUN_TEST_PASS", "MATRUN_TEST_ABSENT"},
	)

	if env["EXPLICIT"] != "yes" {
		t.Errorf("EXPLICIT = %q", env["EXPLICIT"])
	}
	if env["MATRUN_TEST_PASS"] != "from-host" {
		t.Errorf("MATRUN_TEST_PASS = %q", env["MATRUN_TEST_PASS"])
	}
	if env["MATRUN_TEST_SHADOWED"] != "explicit-value" {
		t.Errorf("explicit value should win, got %q", env["MATRUN_TEST_SHADOWED"])
	}
	if _, ok := env["MATRUN_TEST_ABSENT"]; ok {
		t.Error("absent host variable should not appear")
	}
}

func TestFlatten_SortedAndEmpty(t *testing.T) {
	if got := flatten(nil); len(got) != 0 {
		t.Errorf("flatten(nil) = %v, want empty", got)
	}

	got := flatten(map[string]string{"B": "2", "A": "1"})
	want := []string{"A=1", "B=2"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("flatten = %v, want %v", got, want)
	}
}
