package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

// testEnv returns an Environment with buffered output and every tool on PATH.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:      time.Now,
		Stdout:   stdout,
		Stderr:   stderr,
		LookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
	}
	return env, stdout, stderr
}

func TestRunMain(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := runMain(nil, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Usage: docsnap") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := runMain([]string{"convert"}, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), `unknown command "convert"`) {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := runMain([]string{"version"}, env); code != ExitSuccess {
			t.Errorf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "docsnap") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("help with topic", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := runMain([]string{"help", "snapshot"}, env); code != ExitSuccess {
			t.Errorf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "--repo") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("help with unknown topic", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		if code := runMain([]string{"help", "nope"}, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("leading flag falls through to snapshot", func(t *testing.T) {
		t.Parallel()

		// Missing required flags: snapshot should reject with usage code.
		env, _, stderr := testEnv()
		if code := runMain([]string{"--note", "v1"}, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "--repo is required") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"missing repo", ErrMissingRepo, ExitUsage},
		{"missing ref", ErrMissingRef, ExitUsage},
		{"missing note", ErrMissingNote, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"wrapped usage error", errors.Join(errors.New("context"), ErrMissingNote), ExitUsage},
		{"pipeline failure", errors.New("checkout: git command failed"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
