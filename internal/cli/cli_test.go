package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stagelist.dev/stagelist/internal/cli"
	"stagelist.dev/stagelist/internal/errors"
)

// runCLI executes the root command in-process and returns its output
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	cmd := cli.NewRootCmd("test", "abc123", "today")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath, "--color", "never"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "stagelist test (commit abc123, built today)\n", out)
}

func TestDemoCommand(t *testing.T) {
	out, err := runCLI(t, "", "demo")
	require.NoError(t, err)

	require.Contains(t, out, "1. Adding elements for the first commit")
	require.Contains(t, out, "✓ committed")
	require.Contains(t, out, "✗ aborted")
	require.Contains(t, out, "Rolled back 2 pending operations")
	require.Contains(t, out, "This is node number 0.5")
}

func TestRunCommand(t *testing.T) {
	t.Run("reads stdin", func(t *testing.T) {
		out, err := runCLI(t, "insert 0 a\ninsert 1 b\ninsert 1 c\ncommit\nshow saved\n", "run")
		require.NoError(t, err)
		require.Contains(t, out, "Saved list (3)\n  0  a\n  1  c\n  2  b\n")
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batch.txt")
		require.NoError(t, os.WriteFile(path, []byte("insert 0 a\ndelete 5\ncommit\nshow working\n"), 0600))

		out, err := runCLI(t, "", "run", path)
		require.NoError(t, err)
		require.Contains(t, out, "Delete rejected")
		require.Contains(t, out, "✗ aborted: 1 of 2 operations failed")
		require.Contains(t, out, "Working list (0)\n  (empty)\n")
	})

	t.Run("stats prints counters", func(t *testing.T) {
		out, err := runCLI(t, "insert 0 a\ncommit\n", "run", "--stats")
		require.NoError(t, err)
		require.Contains(t, out, `stagelist_commits_total{outcome="committed"} 1`)
		require.Contains(t, out, `stagelist_operations_total{op="insert",result="ok"} 1`)
	})

	t.Run("quiet keeps only stats", func(t *testing.T) {
		out, err := runCLI(t, "insert 0 a\ndelete 4\ncommit\n", "run", "-q", "--stats")
		require.NoError(t, err)
		require.NotContains(t, out, "Inserted")
		require.NotContains(t, out, "aborted:")
		require.Contains(t, out, `stagelist_commits_total{outcome="aborted"} 1`)
	})

	t.Run("strict fails on out of bounds", func(t *testing.T) {
		_, err := runCLI(t, "delete 0\n", "run", "--strict")
		require.ErrorIs(t, err, errors.ErrOutOfBounds)
	})

	t.Run("parse errors name the line", func(t *testing.T) {
		_, err := runCLI(t, "insert 0 a\nfrobnicate\n", "run")
		require.ErrorIs(t, err, errors.ErrInvalidScript)
		require.ErrorContains(t, err, "stdin: line 2")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCLI(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
		require.ErrorContains(t, err, "failed to open script")
	})
}

func TestShellRequiresTerminal(t *testing.T) {
	t.Setenv("STAGELIST_NON_INTERACTIVE", "1")

	_, err := runCLI(t, "", "shell")
	require.ErrorIs(t, err, errors.ErrInteractiveDisabled)
}

func TestInvalidColorFlag(t *testing.T) {
	cmd := cli.NewRootCmd("test", "", "")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "c.json"), "--color", "sometimes", "version"})

	require.ErrorContains(t, cmd.Execute(), "invalid config")
}

func TestLogFileFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "stagelist.log")

	_, err := runCLI(t, "insert 0 a\ncommit\n", "--log-file="+logPath, "run")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "batch=")
	require.Contains(t, string(data), "insert applied")
}
