package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupStore points mine at fresh temporary directories and returns the
// data directory.
func setupStore(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	dataDir := filepath.Join(home, "data")

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "share"))
	t.Setenv("MINE_CONFIG", filepath.Join(home, "config", "mine", "config.toml"))
	t.Setenv("MINE_DATA_DIR", dataDir)
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"MINE_INDEX_FILE", "MINE_KEY_FILE", "MINE_DISABLE_AUDIT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	return dataDir
}

// runCLI executes the mine command tree with args and returns what it
// wrote to stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	ResetGlobalState()

	var stdout, stderr bytes.Buffer
	MineCmd.SetOut(&stdout)
	MineCmd.SetErr(&stderr)
	MineCmd.SetIn(strings.NewReader(stdin))
	MineCmd.SetArgs(args)
	t.Cleanup(func() {
		MineCmd.SetOut(nil)
		MineCmd.SetErr(nil)
		MineCmd.SetIn(nil)
		MineCmd.SetArgs(nil)
	})

	err := MineCmd.Execute()
	if err != nil {
		t.Logf("mine %s: %v\nstderr: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), err
}

// mustRun is runCLI for commands that are expected to succeed.
func mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, stdin, args...)
	if err != nil {
		t.Fatalf("mine %s failed: %v", strings.Join(args, " "), err)
	}
	return out
}

// initializeStore runs mine init in a fresh store.
func initializeStore(t *testing.T) string {
	t.Helper()
	dataDir := setupStore(t)
	mustRun(t, "", "init")
	return dataDir
}
