// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/invowk/jdesc/internal/config"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q, want %q", got, "dev (built from source)")
		}
	})
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	t.Parallel()

	rootCmd := newRootCommand(NewApp(Dependencies{Config: staticConfig{cfg: config.DefaultConfig()}}))
	for _, name := range []string{
		"render", "size", "classify", "convert", "component", "package",
		"same-package", "method", "inspect", "batch", "constants", "config",
	} {
		if c, _, err := rootCmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("subcommand %q not registered (err: %v)", name, err)
		}
	}
}

func TestRootCommand_MissingArgsIsUsageError(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"render", "size", "classify", "method", "inspect"} {
		res := runCLI(t, nil, "", name)
		if got := exitCodeFor(res.err); got != ExitUsage {
			t.Errorf("%s without args: exit code = %d, want %d", name, got, ExitUsage)
		}
	}
}

func TestRootCommand_ConfigLoadFailureFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	var stdout, stderr strings.Builder
	app := NewApp(Dependencies{
		Config: staticConfig{err: errors.New("broken config")},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs([]string{"size", "J"})
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command should run with defaults, got %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "2" {
		t.Errorf("stdout = %q, want 2", stdout.String())
	}
	if !strings.Contains(stderr.String(), "broken config") {
		t.Errorf("stderr should warn about the config, got %q", stderr.String())
	}
	if *app.cfg != *config.DefaultConfig() {
		t.Errorf("config = %+v, want defaults", app.cfg)
	}
}

func TestRootCommand_VerboseFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.UI.Verbose = true

	res := runCLI(t, cfg, "", "render", "I")
	if res.err != nil {
		t.Fatalf("render failed: %v", res.err)
	}
	if !strings.Contains(res.stderr, "render") || !strings.Contains(res.stderr, "descriptor=I") {
		t.Errorf("verbose mode should log debug lines, got %q", res.stderr)
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain")
	if got := formatErrorForDisplay(plain, false); got != "plain" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	wrapped := descriptorFailure(errors.New("cause"), "render descriptor", "X")
	if got := formatErrorForDisplay(wrapped, false); !strings.HasPrefix(got, "failed to render descriptor: X") {
		t.Errorf("formatErrorForDisplay(actionable) = %q", got)
	}
}
