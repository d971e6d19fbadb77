package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// stepClock advances by one second on every reading so countdowns finish
// without waiting on the wall clock.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(time.Second)
	return now
}

// resetFlags restores every flag to its default so executions do not leak
// into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	resetFlags(cmd)

	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// setupTestEnv isolates HOME, writes a fast config and swaps in a stepping
// clock. It returns the config path to pass with --config.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "config.toml")
	content := `tick_interval = "1ms"

[notifications]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	prev := appClock
	appClock = &stepClock{now: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	t.Cleanup(func() {
		appClock = prev
		_ = cleanupServices()
	})

	return path
}

// TestRootCmd_BareExecution verifies the root command is wired
func TestRootCmd_BareExecution(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	if rootCmd.Use != "turskmind" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "turskmind")
	}
}

// TestRootCmd_Help tests the --help flag
func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	if !strings.Contains(stdout, "turskmind") && !strings.Contains(stdout, "TurskMind") {
		t.Error("help output should contain 'turskmind' or 'TurskMind'")
	}
	for _, sub := range []string{"practice", "practices", "affirm", "progress", "about", "mcp"} {
		if !strings.Contains(stdout, sub) {
			t.Errorf("help output should list %q", sub)
		}
	}
}

// TestRootCmd_Flags tests that global flags are registered
func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "format"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}

	if f := rootCmd.PersistentFlags().Lookup("format"); f != nil && f.DefValue != formatText {
		t.Errorf("--format default = %q, want %q", f.DefValue, formatText)
	}
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout, "Version: "+Version) {
		t.Errorf("version output = %q", stdout)
	}
}

func TestRootCmd_MissingConfig(t *testing.T) {
	setupTestEnv(t)

	_, _, err := executeCmd(rootCmd, "about", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
	if !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("error = %v", err)
	}
}
