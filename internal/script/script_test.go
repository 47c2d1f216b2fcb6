package script_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stagelist.dev/stagelist/internal/errors"
	"stagelist.dev/stagelist/internal/script"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses every command kind", func(t *testing.T) {
		t.Parallel()
		src := `
# build the first batch
insert 0 a
add 1 "two words"
delete 5
commit

rollback
show saved
print working
show
`
		cmds, err := script.ParseString(src)
		require.NoError(t, err)
		require.Len(t, cmds, 8)

		require.Equal(t, script.Command{Op: script.OpInsert, Position: 0, Value: "a", Line: 3}, cmds[0])
		require.Equal(t, script.Command{Op: script.OpInsert, Position: 1, Value: "two words", Line: 4}, cmds[1])
		require.Equal(t, script.Command{Op: script.OpDelete, Position: 5, Line: 5}, cmds[2])
		require.Equal(t, script.OpCommit, cmds[3].Op)
		require.Equal(t, script.OpRollback, cmds[4].Op)
		require.Equal(t, script.ShowSaved, cmds[5].Target)
		require.Equal(t, script.ShowWorking, cmds[6].Target)
		require.Equal(t, script.ShowAll, cmds[7].Target)
	})

	t.Run("joins unquoted value tokens", func(t *testing.T) {
		t.Parallel()
		cmds, err := script.ParseString("insert 0 This is node number 1")
		require.NoError(t, err)
		require.Equal(t, "This is node number 1", cmds[0].Value)
	})

	t.Run("keeps negative positions for the engine to reject", func(t *testing.T) {
		t.Parallel()
		cmds, err := script.ParseString("delete -1")
		require.NoError(t, err)
		require.Equal(t, -1, cmds[0].Position)
	})

	t.Run("empty script", func(t *testing.T) {
		t.Parallel()
		cmds, err := script.ParseString("\n# nothing\n")
		require.NoError(t, err)
		require.Empty(t, cmds)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		line int
	}{
		{name: "unknown verb", src: "push 1", line: 1},
		{name: "insert missing value", src: "commit\ninsert 0", line: 2},
		{name: "bad position", src: "delete x", line: 1},
		{name: "delete extra args", src: "delete 1 2", line: 1},
		{name: "commit with args", src: "commit now", line: 1},
		{name: "rollback with args", src: "rollback now", line: 1},
		{name: "show unknown target", src: "show everything", line: 1},
		{name: "unterminated quote", src: "\n\ninsert 0 \"oops", line: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := script.ParseString(tc.src)
			require.ErrorIs(t, err, errors.ErrInvalidScript)

			var scriptErr *errors.ScriptError
			require.ErrorAs(t, err, &scriptErr)
			require.Equal(t, tc.line, scriptErr.Line)
		})
	}
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	cmds := []script.Command{
		{Op: script.OpInsert, Position: 2, Value: "two words"},
		{Op: script.OpInsert, Position: 0, Value: "plain"},
		{Op: script.OpDelete, Position: 4},
		{Op: script.OpCommit},
		{Op: script.OpRollback},
		{Op: script.OpShow, Target: script.ShowSaved},
		{Op: script.OpShow, Target: script.ShowWorking},
		{Op: script.OpShow, Target: script.ShowAll},
	}

	for _, want := range cmds {
		got, ok, err := script.ParseLine(want.String())
		require.NoError(t, err, want.String())
		require.True(t, ok)
		want.Line = 1
		require.Equal(t, want, got, want.String())
	}
}
