package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/addcheck/internal/config"
	"github.com/pengelbrecht/addcheck/internal/selftest"
)

func plainConfig() config.Config {
	cfg := config.Default()
	cfg.Styled = false
	return cfg
}

func TestRunPasses(t *testing.T) {
	out, code := captureStdout(func() int {
		return run([]string{"add"})
	})
	if code != exitSuccess {
		t.Fatalf("expected exit %d, got %d", exitSuccess, code)
	}
	out = ansi.Strip(out)
	for _, want := range []string{"add(2, 3)", "add(-1, 1)", "2/2 passed"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestExecutePlainOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), plainConfig(), nil, &stdout, &stderr)
	if code != exitSuccess {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", exitSuccess, code, stderr.String())
	}

	want := "PASS  add(2, 3)  = 5\nPASS  add(-1, 1) = 0\n\n2/2 passed\n"
	if stdout.String() != want {
		t.Errorf("stdout =\n%q\nwant\n%q", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Errorf("expected empty stderr, got %q", stderr.String())
	}
}

func TestExecuteMismatch(t *testing.T) {
	broken := func(a, b int64) int64 { return a - b }

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), plainConfig(), nil, &stdout, &stderr, selftest.WithAdder(broken))
	if code != exitFailure {
		t.Fatalf("expected exit %d, got %d", exitFailure, code)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected empty stdout, got %q", stdout.String())
	}

	errOut := stderr.String()
	for _, want := range []string{
		"self-test case failed",
		"FAIL  add(2, 3) = -1 (want 5)",
		"0/2 passed, 1 not run",
		"self-test failed: add(2, 3) = -1, want 5",
	} {
		if !strings.Contains(errOut, want) {
			t.Errorf("expected %q in stderr:\n%s", want, errOut)
		}
	}
}

func TestExecuteInvalidConfig(t *testing.T) {
	cfg := plainConfig()
	cfg.LogLevel = "loud"

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), cfg, nil, &stdout, &stderr)
	if code != exitFailure {
		t.Fatalf("expected exit %d, got %d", exitFailure, code)
	}
	if !strings.Contains(stderr.String(), "invalid config") {
		t.Errorf("expected config error, got %q", stderr.String())
	}
}

func TestExecuteUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"extra"}},
		{"unknown flag", []string{"--verbose"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := execute(context.Background(), plainConfig(), tc.args, &stdout, &stderr)
			if code != exitUsage {
				t.Fatalf("expected exit %d, got %d", exitUsage, code)
			}
			if !strings.Contains(stderr.String(), "--help") {
				t.Errorf("expected usage hint, got %q", stderr.String())
			}
		})
	}
}

func TestExecuteHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), plainConfig(), []string{"--help"}, &stdout, &stderr)
	if code != exitSuccess {
		t.Fatalf("expected exit %d, got %d", exitSuccess, code)
	}
	if !strings.Contains(stdout.String(), "Run the addition self-test") {
		t.Errorf("expected help text, got %q", stdout.String())
	}
}

func captureStdout(fn func() int) (string, int) {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	code := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	_ = r.Close()

	return buf.String(), code
}
