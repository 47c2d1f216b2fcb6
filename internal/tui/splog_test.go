package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stagelist.dev/stagelist/internal/errors"
)

func TestSplogConsole(t *testing.T) {
	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf})
	require.NoError(t, err)

	splog.Info("plain")
	splog.Info("inserted %q", "a")
	splog.Warn("careful")
	splog.Error("broken %d", 1)
	splog.Tip("hint")
	splog.Page("page")
	splog.Newline()

	require.Equal(t, "plain\ninserted \"a\"\n⚠️  careful\n❌ broken 1\n💡 hint\npage\n", buf.String())
}

func TestSplogDebug(t *testing.T) {
	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf, Debug: true})
	require.NoError(t, err)

	splog.Debug("visible")
	require.Equal(t, "visible\n", buf.String())
}

func TestSplogQuiet(t *testing.T) {
	var buf bytes.Buffer
	splog := NewSplogWithWriter(&buf)
	child := splog.With("batch", "b1")

	splog.SetQuiet(true)
	require.True(t, child.IsQuiet())
	child.Info("hidden")
	splog.Page("hidden")
	require.Empty(t, buf.String())

	splog.SetQuiet(false)
	child.Info("shown")
	require.Equal(t, "shown\n", buf.String())
}

func TestSplogFile(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "stagelist.log")

	splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf, LogFilePath: logPath})
	require.NoError(t, err)

	splog.With("batch", "b1").Info("inserted")
	splog.Debug("file only")
	require.NoError(t, splog.Close())

	require.NotContains(t, buf.String(), "batch=")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=inserted batch=b1")
	require.Contains(t, string(data), `msg="file only"`)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("STAGELIST_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())
}

func TestCheckInteractiveAllowed(t *testing.T) {
	t.Setenv("STAGELIST_NON_INTERACTIVE", "1")
	require.ErrorIs(t, CheckInteractiveAllowed(), errors.ErrInteractiveDisabled)

	_, err := PromptConfirm("continue?", true)
	require.ErrorIs(t, err, errors.ErrInteractiveDisabled)
}

func TestSplogRedirect(t *testing.T) {
	var console, captured bytes.Buffer
	splog := NewSplogWithWriter(&console)
	child := splog.With("batch", "b1")

	restore := splog.Redirect(&captured)
	child.Info("inside")
	splog.Page("page")
	restore()
	splog.Info("outside")

	require.Equal(t, "inside\npage", captured.String())
	require.Equal(t, "outside\n", console.String())
	require.Same(t, &console, splog.Writer())
}
